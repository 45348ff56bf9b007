package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accelleon/cloudmgmt/internal/adapters/render/table"
	"github.com/accelleon/cloudmgmt/internal/api"
)

func newProviderCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider",
		Short: "Inspect supported cloud providers",
	}

	cmd.AddCommand(
		newProviderListCmd(app),
		newProviderGetCmd(app),
		newProviderAccountsCmd(app),
	)

	return cmd
}

func newProviderListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List providers",
		Args:  cobra.NoArgs,
	}

	name := optStringFlag(cmd, "name", "Filter by provider name")
	page := pageFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		resp, err := app.client.SearchProviders(cmd.Context(), api.ProviderSearch{
			Name:       name(),
			SearchPage: page(),
		})
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), table.Providers(resp.Results))
		return nil
	}

	return cmd
}

func newProviderGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one provider and its account parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			provider, err := app.client.GetProvider(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), provider)
		},
	}
}

func newProviderAccountsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "accounts <id>",
		Short: "List the accounts registered on a provider",
		Args:  cobra.ExactArgs(1),
	}

	page := pageFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		resp, err := app.client.ProviderAccounts(cmd.Context(), id, page())
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), table.Accounts(resp.Results))
		return nil
	}

	return cmd
}
