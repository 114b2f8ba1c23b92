package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
)

func newCompanyCmd(flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "company <id>",
		Short: "Show one company by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setupQuery(cmd, flags)
			if err != nil {
				return err
			}

			req := domain.CompanyIDRequest{ID: args[0]}
			company, found, err := env.service.CompanyByID(req)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("company with ID %s not found", req.ID)
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), company)
			}
			renderCompany(cmd.OutOrStdout(), &company)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON instead of a table")
	return cmd
}
