package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

func getAllPrompts() []Prompt {
	return []Prompt{
		{
			Name:        "explore_batch",
			Description: "Summarize the companies of one YC batch.",
			Arguments: []PromptArgument{
				{Name: "batch", Description: "Batch name, e.g. S13 or W09", Required: true},
			},
		},
		{
			Name:        "industry_overview",
			Description: "Profile an industry: size, stages, notable and hiring companies.",
			Arguments: []PromptArgument{
				{Name: "industry", Description: "Industry name, e.g. Fintech", Required: true},
			},
		},
		{
			Name:        "find_hiring",
			Description: "Find companies that are hiring, optionally narrowed by region or tag.",
			Arguments: []PromptArgument{
				{Name: "region", Description: "Region or city", Required: false},
				{Name: "tag", Description: "Tag such as AI or SaaS", Required: false},
			},
		},
	}
}

// getPromptByName returns the messages for name. Missing required
// arguments produce an error suitable for -32602.
func getPromptByName(name string, arguments map[string]string) ([]PromptMessage, error) {
	var def *Prompt
	prompts := getAllPrompts()
	for i := range prompts {
		if prompts[i].Name == name {
			def = &prompts[i]
			break
		}
	}
	if def == nil {
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}

	var missing []string
	for _, arg := range def.Arguments {
		if arg.Required && strings.TrimSpace(arguments[arg.Name]) == "" {
			missing = append(missing, arg.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}

	var text string
	switch def.Name {
	case "explore_batch":
		text = fmt.Sprintf(
			"Use %s with batch %q to list its companies, then %s with batch %q. "+
				"Summarize the batch: status mix, industries, notable and hiring companies.",
			ToolCompaniesByBatch, arguments["batch"], ToolCompanyStats, arguments["batch"])
	case "industry_overview":
		text = fmt.Sprintf(
			"Call %s with industry %q for counts by stage and status, then %s with filters "+
				"{industry: %q, isHiring: true} sorted by team_size desc. Describe the industry and name standout companies.",
			ToolCompanyStats, arguments["industry"], ToolSearchCompanies, arguments["industry"])
	case "find_hiring":
		text = buildFindHiring(arguments["region"], arguments["tag"])
	}

	return []PromptMessage{{Role: "user", Content: Content{Type: "text", Text: text}}}, nil
}

func buildFindHiring(region, tag string) string {
	filters := []string{"isHiring: true"}
	if region != "" {
		filters = append(filters, fmt.Sprintf("regions: [%q]", region))
	}
	if tag != "" {
		filters = append(filters, fmt.Sprintf("tags: [%q]", tag))
	}
	return fmt.Sprintf(
		"Use %s with filters {%s}. List the companies with one line each on what they do and where they are.",
		ToolSearchCompanies, strings.Join(filters, ", "))
}

func (s *Server) handlePromptsGet(id any, params json.RawMessage) *Response {
	var p struct {
		Name      string            `json:"name"`
		Arguments map[string]string `json:"arguments,omitempty"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid parameters: "+err.Error(), nil)
	}
	if p.Name == "" {
		return s.errorResponse(id, InvalidParams, "name is required", nil)
	}

	messages, err := getPromptByName(p.Name, p.Arguments)
	if err != nil {
		return s.errorResponse(id, InvalidParams, err.Error(), nil)
	}
	return s.resultResponse(id, map[string]any{"messages": messages})
}
