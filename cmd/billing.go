package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accelleon/cloudmgmt/internal/adapters/render/table"
	"github.com/accelleon/cloudmgmt/internal/api"
	"github.com/accelleon/cloudmgmt/internal/domain"
)

func newBillingCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Inspect billing periods",
	}

	cmd.AddCommand(
		newBillingListCmd(app),
		newBillingGetCmd(app),
	)

	return cmd
}

func newBillingListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List billing periods",
		Args:  cobra.NoArgs,
	}

	iaas := optStringFlag(cmd, "provider", "Filter by provider name")
	account := optStringFlag(cmd, "account", "Filter by account name")
	startDate := optDateFlag(cmd, "start-date", "Periods starting at or after this date")
	endDate := optDateFlag(cmd, "end-date", "Periods ending at or before this date")
	page := pageFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		start, err := startDate()
		if err != nil {
			return err
		}
		end, err := endDate()
		if err != nil {
			return err
		}

		var resp domain.BillingSearchResponse
		err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching billing periods...", func(ctx context.Context) error {
			var fetchErr error
			resp, fetchErr = app.client.SearchBilling(ctx, api.BillingSearch{
				Iaas:       iaas(),
				Account:    account(),
				StartDate:  start,
				EndDate:    end,
				SearchPage: page(),
			})
			return fetchErr
		})
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), table.BillingPeriods(resp.Results))
		return nil
	}

	return cmd
}

func newBillingGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one billing period with line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			period, err := app.client.GetBillingPeriod(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), period)
		},
	}
}
