package mcp

// Tool names.
const (
	ToolSearchCompanies     = "yc_search_companies"
	ToolGetCompany          = "yc_get_company"
	ToolCompaniesByBatch    = "yc_get_companies_by_batch"
	ToolCompaniesByIndustry = "yc_get_companies_by_industry"
	ToolCompaniesByStatus   = "yc_get_companies_by_status"
	ToolCompaniesByStage    = "yc_get_companies_by_stage"
	ToolCompaniesByRegion   = "yc_get_companies_by_region"
	ToolCompaniesByTag      = "yc_get_companies_by_tag"
	ToolHiringCompanies     = "yc_get_hiring_companies"
	ToolTopCompanies        = "yc_get_top_companies"
	ToolCompanyStats        = "yc_get_company_stats"
	ToolAllCompanies        = "yc_get_all_companies"
)

// Output formats for tool results.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// getAllTools returns every tool in the order tools/list reports them.
func getAllTools() []Tool {
	tools := []Tool{searchTool(), getCompanyTool()}
	tools = append(tools, fieldTools()...)
	tools = append(tools, listingTool(ToolHiringCompanies, "Get all YC companies that are currently hiring."))
	tools = append(tools, listingTool(ToolTopCompanies, "Get all YC companies marked as top companies."))
	tools = append(tools, statsTool())
	tools = append(tools, listingTool(ToolAllCompanies, "Get all YC companies with pagination support."))
	return tools
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func integerProp(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func booleanProp(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description}
}

func stringArrayProp(description string) map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": description}
}

func formatProp() map[string]any {
	return map[string]any{
		"type":        "string",
		"enum":        []string{FormatJSON, FormatMarkdown},
		"default":     FormatJSON,
		"description": "Result format: 'json' (default) or 'markdown' for a readable summary",
	}
}

// withPaging adds page, pageSize and format to props.
func withPaging(props map[string]any) map[string]any {
	props["page"] = map[string]any{
		"type":        "integer",
		"description": "Page number for pagination (e.g., 1 for first page, 2 for second page)",
		"minimum":     1,
		"default":     1,
	}
	props["pageSize"] = map[string]any{
		"type":        "integer",
		"description": "Number of results per page (e.g., 10, 25, 50, 100)",
		"minimum":     1,
		"default":     50,
	}
	props["format"] = formatProp()
	return props
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func filterProperties() map[string]any {
	return map[string]any{
		"industry":    stringProp("Filter by industry (e.g., 'Consumer', 'Fintech', 'B2B', 'Healthcare', 'Industrials')"),
		"stage":       stringProp("Filter by company stage (e.g., 'Early', 'Growth')"),
		"status":      stringProp("Filter by company status (e.g., 'Active', 'Public', 'Acquired', 'Inactive')"),
		"batch":       stringProp("Filter by YC batch (e.g., 'S13', 'W09', 'Summer 2013')"),
		"minTeamSize": integerProp("Minimum team size, inclusive (e.g., 10, 50, 100)"),
		"maxTeamSize": integerProp("Maximum team size, inclusive (e.g., 100, 500, 1000)"),
		"tags":        stringArrayProp("Match companies carrying any of these tags (e.g., ['AI', 'Marketplace'])"),
		"regions":     stringArrayProp("Match companies located in any of these regions (e.g., ['San Francisco', 'Europe'])"),
		"isHiring":    booleanProp("Filter by hiring status"),
		"topCompany":  booleanProp("Filter by top company status"),
		"nonprofit":   booleanProp("Filter by nonprofit status"),
		"launchedAfter": integerProp(
			"Launched at or after this Unix timestamp (e.g., 1262304000 for 2010)"),
		"launchedBefore": integerProp(
			"Launched at or before this Unix timestamp (e.g., 1577836800 for 2020)"),
	}
}

func searchTool() Tool {
	props := withPaging(map[string]any{
		"query": stringProp(
			"Text matched against name, one-liner, description, website, location, tags and industries " +
				"(e.g., 'AI', 'delivery', 'San Francisco')"),
		"filters": map[string]any{
			"type":        "object",
			"description": "Structured filters, all combined with AND",
			"properties":  filterProperties(),
		},
		"sortBy": map[string]any{
			"type":        "string",
			"enum":        []string{"name", "team_size", "launched_at", "batch"},
			"description": "Field to sort by",
		},
		"sortOrder": map[string]any{
			"type":        "string",
			"enum":        []string{"asc", "desc"},
			"default":     "asc",
			"description": "Sort order",
		},
	})
	return Tool{
		Name: ToolSearchCompanies,
		Description: "Search and filter YC companies by text, industry, stage, status, batch, team size, tags, " +
			"regions, flags and launch date, with sorting and pagination. Examples: AI companies hiring in " +
			"San Francisco, fintech startups with 100+ employees.",
		InputSchema: objectSchema(props),
	}
}

func getCompanyTool() Tool {
	return Tool{
		Name:        ToolGetCompany,
		Description: "Get detailed information about a specific YC company by ID (e.g., 531 for DoorDash).",
		InputSchema: objectSchema(map[string]any{
			"companyId": map[string]any{
				"type":        []string{"string", "integer"},
				"description": "Company ID to retrieve, as a string or number (e.g., '531')",
			},
			"format": formatProp(),
		}, "companyId"),
	}
}

type fieldToolDef struct {
	name        string
	arg         string
	description string
	argHelp     string
}

var fieldToolDefs = []fieldToolDef{
	{
		name:        ToolCompaniesByBatch,
		arg:         "batch",
		description: "Get all companies from a specific YC batch (e.g., 'S13', 'W09').",
		argHelp:     "YC batch name (e.g., 'S13', 'W09', 'Summer 2012')",
	},
	{
		name:        ToolCompaniesByIndustry,
		arg:         "industry",
		description: "Get all companies in a specific industry, matching the primary industry or any listed industry.",
		argHelp:     "Industry name (e.g., 'Consumer', 'Fintech', 'B2B', 'Healthcare')",
	},
	{
		name:        ToolCompaniesByStatus,
		arg:         "status",
		description: "Get all companies with a specific status (e.g., 'Active', 'Public', 'Acquired', 'Inactive').",
		argHelp:     "Company status",
	},
	{
		name:        ToolCompaniesByStage,
		arg:         "stage",
		description: "Get all companies at a specific stage (e.g., 'Early', 'Growth').",
		argHelp:     "Company stage",
	},
	{
		name:        ToolCompaniesByRegion,
		arg:         "region",
		description: "Get all companies in a region or location, matched as a substring of locations and regions.",
		argHelp:     "Region or location (e.g., 'San Francisco', 'Europe', 'Canada')",
	},
	{
		name:        ToolCompaniesByTag,
		arg:         "tag",
		description: "Get all companies with a specific tag (e.g., 'AI', 'Marketplace', 'SaaS').",
		argHelp:     "Tag name, matched exactly",
	},
}

func fieldTools() []Tool {
	tools := make([]Tool, 0, len(fieldToolDefs))
	for _, def := range fieldToolDefs {
		props := withPaging(map[string]any{
			def.arg: map[string]any{"type": "string", "minLength": 1, "description": def.argHelp},
		})
		tools = append(tools, Tool{
			Name:        def.name,
			Description: def.description,
			InputSchema: objectSchema(props, def.arg),
		})
	}
	return tools
}

func listingTool(name, description string) Tool {
	return Tool{
		Name:        name,
		Description: description,
		InputSchema: objectSchema(withPaging(map[string]any{})),
	}
}

func statsTool() Tool {
	props := filterProperties()
	props["format"] = formatProp()
	return Tool{
		Name: ToolCompanyStats,
		Description: "Get statistics about YC companies (counts by status, industry, stage and batch, average " +
			"team size, hiring/top/public/acquired totals) with optional filtering.",
		InputSchema: objectSchema(props),
	}
}
