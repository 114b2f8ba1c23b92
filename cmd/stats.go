package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
)

func newStatsCmd(flags *globalFlags) *cobra.Command {
	sf := &searchFlags{}
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize companies by status, industry, stage and batch",
		Long: `Print aggregate statistics, optionally restricted by the same filters as search.

Examples:
  yclists stats
  yclists stats --industry Fintech`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setupQuery(cmd, flags)
			if err != nil {
				return err
			}

			req := domain.StatsRequest{Filters: sf.filters(cmd.Flags())}
			if validateErr := req.Validate(); validateErr != nil {
				return validateErr
			}

			stats := env.service.Stats(req)
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			renderStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}

	addFilterFlags(cmd.Flags(), sf)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON instead of tables")
	return cmd
}
