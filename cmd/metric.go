package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accelleon/cloudmgmt/internal/adapters/render/table"
	"github.com/accelleon/cloudmgmt/internal/api"
	"github.com/accelleon/cloudmgmt/internal/domain"
)

func newMetricCmd(app *app) *cobra.Command {
	var (
		asJSON      bool
		accountName string
	)

	cmd := &cobra.Command{
		Use:   "metric",
		Short: "Show instance-count metrics",
		Args:  cobra.NoArgs,
	}

	iaas := optStringFlag(cmd, "provider", "Filter by provider name")
	granularity := optStringFlag(cmd, "granularity", "Sample granularity (hour|day|month)")
	startDate := optDateFlag(cmd, "start-date", "Window start")
	endDate := optDateFlag(cmd, "end-date", "Window end")
	cmd.Flags().StringVar(&accountName, "account", "", "Limit to one account by name")
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

		query := api.MetricQuery{
			Iaas:        iaas(),
			Granularity: granularity(),
			StartDate:   start,
			EndDate:     end,
		}

		var resp domain.MetricResponse
		err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching metrics...", func(ctx context.Context) error {
			var fetchErr error
			if accountName != "" {
				resp, fetchErr = app.client.AccountMetrics(ctx, accountName, query)
			} else {
				resp, fetchErr = app.client.Metrics(ctx, query)
			}
			return fetchErr
		})
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), table.Metrics(resp))
		return nil
	}

	return cmd
}
