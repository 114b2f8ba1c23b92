package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

const ycScheme = "yc://"

// Resource URIs.
const (
	ResourceDatasetInfo = "yc://dataset/info"
	ResourceToolDocs    = "yc://docs/tools"
)

func getAllResources() []ResourceListItem {
	return []ResourceListItem{
		{
			URI:         ResourceDatasetInfo,
			Name:        "Dataset Info",
			Description: "Where the company dataset was loaded from, how many records it holds and when it was read",
			MimeType:    "application/json",
		},
		{
			URI:         ResourceToolDocs,
			Name:        "Tool Reference",
			Description: "Every query tool with its arguments",
			MimeType:    "text/markdown",
		},
	}
}

// ResourceNotFoundError is returned for unknown resource URIs.
type ResourceNotFoundError struct {
	URI string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URI)
}

func (s *Server) readResource(uri string) ([]ResourceContent, error) {
	if !strings.HasPrefix(uri, ycScheme) {
		return nil, &ResourceNotFoundError{URI: uri}
	}

	switch strings.Trim(strings.TrimPrefix(uri, ycScheme), "/") {
	case "dataset/info":
		text, err := s.datasetInfo()
		if err != nil {
			return nil, err
		}
		return []ResourceContent{{URI: uri, MimeType: "application/json", Text: text}}, nil
	case "docs/tools":
		return []ResourceContent{{URI: uri, MimeType: "text/markdown", Text: toolReference(s.tools)}}, nil
	default:
		return nil, &ResourceNotFoundError{URI: uri}
	}
}

func (s *Server) datasetInfo() (string, error) {
	info := map[string]any{
		"source":    s.dataset.Source(),
		"loaded":    s.dataset.Loaded(),
		"companies": s.dataset.Count(),
	}
	if at := s.dataset.LoadedAt(); !at.IsZero() {
		info["loadedAt"] = at.Format(time.RFC3339)
	}
	return prettyJSON(info)
}

// toolReference renders the catalog as markdown, one section per tool.
func toolReference(tools []Tool) string {
	var b strings.Builder
	b.WriteString("# YC company tools\n")
	for _, tool := range tools {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", tool.Name, tool.Description)

		props, _ := tool.InputSchema["properties"].(map[string]any)
		if len(props) == 0 {
			continue
		}
		required := map[string]bool{}
		if req, ok := tool.InputSchema["required"].([]string); ok {
			for _, r := range req {
				required[r] = true
			}
		}

		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("\n")
		for _, name := range names {
			prop, _ := props[name].(map[string]any)
			desc, _ := prop["description"].(string)
			marker := ""
			if required[name] {
				marker = " (required)"
			}
			fmt.Fprintf(&b, "- `%s`%s: %s\n", name, marker, desc)
		}
	}
	return b.String()
}

func (s *Server) handleResourcesRead(id any, params json.RawMessage) *Response {
	var p struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(params, &p); err != nil || p.URI == "" {
		return s.errorResponse(id, InvalidParams, "Invalid parameters: uri is required", nil)
	}

	contents, err := s.readResource(p.URI)
	if err != nil {
		var notFound *ResourceNotFoundError
		if errors.As(err, &notFound) {
			return s.errorResponse(id, InvalidParams, err.Error(), map[string]any{"uri": p.URI})
		}
		return s.errorResponse(id, InternalError, err.Error(), nil)
	}
	return s.resultResponse(id, map[string]any{"contents": contents})
}
