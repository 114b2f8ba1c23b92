package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
	"github.com/mieltoinc/yclistdedalus/internal/format"
	"github.com/mieltoinc/yclistdedalus/internal/logger"
)

// fieldToolKinds maps the by-field tool names to the attribute they match and
// the argument that carries the value.
var fieldToolKinds = map[string]struct {
	kind domain.FieldKind
	arg  string
}{
	ToolCompaniesByBatch:    {domain.FieldBatch, "batch"},
	ToolCompaniesByIndustry: {domain.FieldIndustry, "industry"},
	ToolCompaniesByStatus:   {domain.FieldStatus, "status"},
	ToolCompaniesByStage:    {domain.FieldStage, "stage"},
	ToolCompaniesByRegion:   {domain.FieldRegion, "region"},
	ToolCompaniesByTag:      {domain.FieldTag, "tag"},
}

var flagToolKinds = map[string]domain.FlagKind{
	ToolHiringCompanies: domain.FlagHiring,
	ToolTopCompanies:    domain.FlagTop,
	ToolAllCompanies:    domain.FlagAll,
}

// toolOutput is what a tool handler produces before it is wrapped in a response.
type toolOutput struct {
	text     string
	notFound bool
	results  int
}

// routeToolCall validates arguments and runs the named tool. It returns the
// response together with the outcome and result count for metrics.
func (s *Server) routeToolCall(_ context.Context, id any, name string, arguments json.RawMessage) (*Response, string, int) {
	if !s.knownTool(name) {
		return s.errorResponse(id, MethodNotFound, "Unknown tool: "+name, nil), OutcomeUnknownTool, 0
	}

	if err := s.validator.validate(name, arguments); err != nil {
		return s.invalidParams(id, err), OutcomeInvalid, 0
	}

	out, err := s.runTool(name, arguments)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidParams) {
			return s.invalidParams(id, err), OutcomeInvalid, 0
		}
		s.log.Error("Tool call failed", logger.String("tool", name), logger.Error(err))
		return s.errorResponse(id, InternalError, err.Error(), nil), OutcomeInternalFail, 0
	}

	outcome := OutcomeOK
	if out.notFound {
		outcome = OutcomeNotFound
	}
	return s.resultResponse(id, ToolResult{
		Content: []Content{{Type: "text", Text: out.text}},
		IsError: false,
	}), outcome, out.results
}

func (s *Server) knownTool(name string) bool {
	for i := range s.tools {
		if s.tools[i].Name == name {
			return true
		}
	}
	return false
}

func (s *Server) invalidParams(id any, err error) *Response {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return s.errorResponse(id, InvalidParams, argErr.Error(), argErr.Errors)
	}
	return s.errorResponse(id, InvalidParams, err.Error(), nil)
}

func (s *Server) runTool(name string, arguments json.RawMessage) (toolOutput, error) {
	if def, ok := fieldToolKinds[name]; ok {
		return s.handleByField(def.kind, def.arg, arguments)
	}
	if flag, ok := flagToolKinds[name]; ok {
		return s.handleByFlag(flag, arguments)
	}

	switch name {
	case ToolSearchCompanies:
		return s.handleSearch(arguments)
	case ToolGetCompany:
		return s.handleGetCompany(arguments)
	case ToolCompanyStats:
		return s.handleStats(arguments)
	default:
		return toolOutput{}, fmt.Errorf("tool %s has no handler", name)
	}
}

func (s *Server) handleSearch(arguments json.RawMessage) (toolOutput, error) {
	var args searchArgs
	if err := decodeArgs(arguments, &args); err != nil {
		return toolOutput{}, err
	}

	req := args.request()
	if err := req.Validate(s.limits); err != nil {
		return toolOutput{}, err
	}

	list := s.queries.Search(req)
	title := "Search results"
	if req.Query != "" {
		title = fmt.Sprintf("Search results for %q", req.Query)
	}
	return listOutput(list, args.Format, title)
}

func (s *Server) handleGetCompany(arguments json.RawMessage) (toolOutput, error) {
	var args companyArgs
	if err := decodeArgs(arguments, &args); err != nil {
		return toolOutput{}, err
	}

	req := domain.CompanyIDRequest{ID: args.id()}
	if err := req.Validate(); err != nil {
		return toolOutput{}, err
	}

	company, found, err := s.queries.CompanyByID(req)
	if err != nil {
		return toolOutput{}, err
	}
	if !found {
		return toolOutput{text: fmt.Sprintf("Company with ID %s not found.", req.ID), notFound: true}, nil
	}

	if args.Format == FormatMarkdown {
		return toolOutput{text: format.CompanyDetail(&company), results: 1}, nil
	}
	text, err := prettyJSON(company)
	return toolOutput{text: text, results: 1}, err
}

func (s *Server) handleByField(kind domain.FieldKind, arg string, arguments json.RawMessage) (toolOutput, error) {
	var args pagingArgs
	if err := decodeArgs(arguments, &args); err != nil {
		return toolOutput{}, err
	}

	// The value sits under a tool-specific key (batch, industry, ...).
	var values map[string]any
	if err := decodeArgs(arguments, &values); err != nil {
		return toolOutput{}, err
	}
	value, _ := values[arg].(string)

	req := domain.FieldRequest{Field: kind, Value: value, Pagination: args.pagination()}
	if err := req.Validate(s.limits); err != nil {
		return toolOutput{}, err
	}

	list := s.queries.ByField(req)
	return listOutput(list, args.Format, fmt.Sprintf("Companies with %s %q", kind, value))
}

func (s *Server) handleByFlag(flag domain.FlagKind, arguments json.RawMessage) (toolOutput, error) {
	var args pagingArgs
	if err := decodeArgs(arguments, &args); err != nil {
		return toolOutput{}, err
	}

	req := domain.FlagRequest{Flag: flag, Pagination: args.pagination()}
	if err := req.Validate(s.limits); err != nil {
		return toolOutput{}, err
	}

	titles := map[domain.FlagKind]string{
		domain.FlagHiring: "Companies currently hiring",
		domain.FlagTop:    "Top companies",
		domain.FlagAll:    "All companies",
	}
	return listOutput(s.queries.ByFlag(req), args.Format, titles[flag])
}

func (s *Server) handleStats(arguments json.RawMessage) (toolOutput, error) {
	var args statsArgs
	if err := decodeArgs(arguments, &args); err != nil {
		return toolOutput{}, err
	}

	req := domain.StatsRequest{Filters: args.toDomain()}
	if err := req.Validate(); err != nil {
		return toolOutput{}, err
	}

	stats := s.queries.Stats(req)
	if args.Format == FormatMarkdown {
		return toolOutput{text: format.Stats(stats, "YC company statistics"), results: stats.TotalCompanies}, nil
	}
	text, err := prettyJSON(stats)
	return toolOutput{text: text, results: stats.TotalCompanies}, err
}

func listOutput(list domain.CompanyList, outputFormat, title string) (toolOutput, error) {
	if outputFormat == FormatMarkdown {
		return toolOutput{text: format.CompanyList(list, title), results: len(list.Companies)}, nil
	}
	text, err := prettyJSON(list)
	return toolOutput{text: text, results: len(list.Companies)}, err
}

func prettyJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data), nil
}
