package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
)

type searchFlags struct {
	query       string
	industry    string
	stage       string
	status      string
	batch       string
	minTeamSize int
	maxTeamSize int
	tags        []string
	regions     []string
	hiring      bool
	top         bool
	nonprofit   bool
	sortBy      string
	sortOrder   string
	page        int
	pageSize    int
	jsonOutput  bool
}

func newSearchCmd(flags *globalFlags) *cobra.Command {
	sf := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search and filter companies",
		Long: `Search companies by text and filters and print the matching page as a table.

Examples:
  yclists search -q delivery
  yclists search --industry Fintech --min-team-size 100 --sort team_size --order desc
  yclists search --tag AI --region "San Francisco" --hiring`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, flags, sf)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&sf.query, "query", "q", "", "text to match against names, descriptions, locations, tags and industries")
	addFilterFlags(f, sf)
	f.StringVar(&sf.sortBy, "sort", "", "sort field: name, team_size, launched_at or batch")
	f.StringVar(&sf.sortOrder, "order", "", "sort order: asc or desc")
	f.IntVar(&sf.page, "page", domain.DefaultPage, "page number")
	f.IntVar(&sf.pageSize, "page-size", 0, "results per page (default from config)")
	f.BoolVar(&sf.jsonOutput, "json", false, "print JSON instead of a table")
	return cmd
}

func addFilterFlags(f *pflag.FlagSet, sf *searchFlags) {
	f.StringVar(&sf.industry, "industry", "", "industry, matched against industry and industries")
	f.StringVar(&sf.stage, "stage", "", "stage, e.g. Early or Growth")
	f.StringVar(&sf.status, "status", "", "status, e.g. Active, Public, Acquired")
	f.StringVar(&sf.batch, "batch", "", "batch, e.g. S13")
	f.IntVar(&sf.minTeamSize, "min-team-size", 0, "minimum team size (inclusive)")
	f.IntVar(&sf.maxTeamSize, "max-team-size", 0, "maximum team size (inclusive)")
	f.StringSliceVar(&sf.tags, "tag", nil, "tag; repeat for any-of matching")
	f.StringSliceVar(&sf.regions, "region", nil, "region or location substring; repeat for any-of matching")
	f.BoolVar(&sf.hiring, "hiring", false, "only companies that are hiring (--hiring=false for the opposite)")
	f.BoolVar(&sf.top, "top", false, "only top companies")
	f.BoolVar(&sf.nonprofit, "nonprofit", false, "only nonprofits")
}

// filters converts the flags that were actually set into domain filters.
func (sf *searchFlags) filters(f *pflag.FlagSet) domain.Filters {
	var out domain.Filters
	optString := func(name, v string) *string {
		if f.Changed(name) && v != "" {
			return &v
		}
		return nil
	}
	optInt := func(name string, v int) *int {
		if f.Changed(name) {
			return &v
		}
		return nil
	}
	optBool := func(name string, v bool) *bool {
		if f.Changed(name) {
			return &v
		}
		return nil
	}

	out.Industry = optString("industry", sf.industry)
	out.Stage = optString("stage", sf.stage)
	out.Status = optString("status", sf.status)
	out.Batch = optString("batch", sf.batch)
	out.MinTeamSize = optInt("min-team-size", sf.minTeamSize)
	out.MaxTeamSize = optInt("max-team-size", sf.maxTeamSize)
	out.Tags = sf.tags
	out.Regions = sf.regions
	out.IsHiring = optBool("hiring", sf.hiring)
	out.TopCompany = optBool("top", sf.top)
	out.Nonprofit = optBool("nonprofit", sf.nonprofit)
	return out
}

func runSearch(cmd *cobra.Command, flags *globalFlags, sf *searchFlags) error {
	env, err := setupQuery(cmd, flags)
	if err != nil {
		return err
	}

	req := domain.SearchRequest{
		Query:      sf.query,
		Filters:    sf.filters(cmd.Flags()),
		Pagination: domain.Pagination{Page: sf.page, PageSize: sf.pageSize},
	}
	if sf.sortBy != "" || sf.sortOrder != "" {
		req.Sort = &domain.Sort{Field: domain.SortField(sf.sortBy), Order: domain.SortOrder(sf.sortOrder)}
	}
	if validateErr := req.Validate(limits(env.cfg)); validateErr != nil {
		return validateErr
	}

	list := env.service.Search(req)
	if sf.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), list)
	}

	title := "Search results"
	if sf.query != "" {
		title = fmt.Sprintf("Search results for %q", sf.query)
	}
	renderCompanyList(cmd.OutOrStdout(), list, title)
	return nil
}
