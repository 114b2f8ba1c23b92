// Package mcp implements the Model Context Protocol server that exposes the
// company query tools over JSON-RPC 2.0.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
	"github.com/mieltoinc/yclistdedalus/internal/logger"
	"github.com/mieltoinc/yclistdedalus/internal/query"
)

// Dataset describes the loaded record store for the dataset resource.
type Dataset interface {
	Count() int
	Loaded() bool
	LoadedAt() time.Time
	Source() string
}

// Recorder observes tool calls. Implemented by the metrics package.
type Recorder interface {
	ToolCall(tool, outcome string, duration time.Duration, results int)
}

// Tool call outcomes reported to the Recorder.
const (
	OutcomeOK           = "ok"
	OutcomeNotFound     = "not_found"
	OutcomeInvalid      = "invalid_params"
	OutcomeUnknownTool  = "unknown_tool"
	OutcomeInternalFail = "error"
)

type nopRecorder struct{}

func (nopRecorder) ToolCall(string, string, time.Duration, int) {}

// Server handles MCP protocol requests.
type Server struct {
	queries   *query.Service
	dataset   Dataset
	tools     []Tool
	validator *argValidator
	limits    domain.Limits
	name      string
	version   string
	recorder  Recorder
	log       logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithRecorder sets the tool call observer.
func WithRecorder(r Recorder) Option {
	return func(s *Server) { s.recorder = r }
}

// WithLimits sets the pagination limits applied to tool arguments.
func WithLimits(l domain.Limits) Option {
	return func(s *Server) { s.limits = l }
}

// WithServerInfo sets the name and version reported by initialize.
func WithServerInfo(name, version string) Option {
	return func(s *Server) {
		s.name = name
		s.version = version
	}
}

// NewServer creates a new MCP server over the given query service.
func NewServer(queries *query.Service, dataset Dataset, opts ...Option) (*Server, error) {
	s := &Server{
		queries:  queries,
		dataset:  dataset,
		tools:    getAllTools(),
		limits:   domain.DefaultLimits(),
		name:     "yc-lists",
		version:  "1.0.0",
		recorder: nopRecorder{},
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	validator, err := newArgValidator(s.tools)
	if err != nil {
		return nil, err
	}
	s.validator = validator
	return s, nil
}

// Tools returns the tool catalog.
func (s *Server) Tools() []Tool {
	return s.tools
}

// HandleRequest processes an MCP request. It returns nil for notifications,
// which never get a response.
func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	resp := s.dispatch(ctx, req)
	if req.IsNotification() {
		return nil
	}
	return resp
}

func (s *Server) dispatch(ctx context.Context, req *Request) *Response {
	id := req.ID
	if req.JSONRPC != JSONRPCVersion || req.Method == "" {
		return s.errorResponse(id, InvalidRequest, "Invalid Request", nil)
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(id)
	case "notifications/initialized", "notifications/cancelled":
		return nil
	case "ping":
		return s.resultResponse(id, map[string]any{})
	case "tools/list":
		return s.resultResponse(id, map[string]any{"tools": s.tools})
	case "tools/call":
		return s.handleToolsCall(ctx, id, req.Params)
	case "resources/list":
		return s.resultResponse(id, map[string]any{"resources": getAllResources()})
	case "resources/read":
		return s.handleResourcesRead(id, req.Params)
	case "prompts/list":
		return s.resultResponse(id, map[string]any{"prompts": getAllPrompts()})
	case "prompts/get":
		return s.handlePromptsGet(id, req.Params)
	default:
		return s.errorResponse(id, MethodNotFound, "Method not found: "+req.Method, nil)
	}
}

func (s *Server) handleInitialize(id any) *Response {
	return s.resultResponse(id, map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
			"prompts":   map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    s.name,
			"version": s.version,
		},
	})
}

func (s *Server) handleToolsCall(ctx context.Context, id any, params json.RawMessage) *Response {
	var call ToolCallParams
	if err := json.Unmarshal(params, &call); err != nil || call.Name == "" {
		return s.errorResponse(id, InvalidParams, "Invalid parameters: tool name is required", nil)
	}

	start := time.Now()
	resp, outcome, results := s.routeToolCall(ctx, id, call.Name, call.Arguments)
	elapsed := time.Since(start)

	s.recorder.ToolCall(call.Name, outcome, elapsed, results)
	s.log.Debug("Tool call handled",
		logger.String("tool", call.Name),
		logger.String("outcome", outcome),
		logger.Int("results", results),
		logger.Duration("duration", elapsed),
	)
	return resp
}

func (s *Server) resultResponse(id, result any) *Response {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to marshal result: %v", err), nil)
	}
	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Result:  json.RawMessage(resultJSON),
	}
}

func (s *Server) errorResponse(id any, code int, message string, data any) *Response {
	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error: &ErrorObject{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// NewErrorResponse builds an error response for transports that fail before
// a request can be dispatched.
func NewErrorResponse(id any, code int, message string) *Response {
	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error:   &ErrorObject{Code: code, Message: message},
	}
}
