package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accelleon/cloudmgmt/internal/adapters/render/table"
	"github.com/accelleon/cloudmgmt/internal/api"
	"github.com/accelleon/cloudmgmt/internal/domain"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage provider accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountGetCmd(app),
		newAccountCreateCmd(app),
		newAccountUpdateCmd(app),
		newAccountDeleteCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
	}

	name := optStringFlag(cmd, "name", "Filter by account name")
	iaas := optStringFlag(cmd, "provider", "Filter by provider name")
	page := pageFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		resp, err := app.client.SearchAccounts(cmd.Context(), api.AccountSearch{
			Name:       name(),
			Iaas:       iaas(),
			SearchPage: page(),
		})
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

func newAccountGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			account, err := app.client.GetAccount(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), account)
		},
	}
}

func newAccountCreateCmd(app *app) *cobra.Command {
	var (
		name string
		iaas string
		data map[string]string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register an account on a provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := app.client.CreateAccount(cmd.Context(), domain.CreateAccount{
				Name: name,
				Iaas: iaas,
				Data: data,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created account %s (id %d)\n", account.Name, account.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name")
	cmd.Flags().StringVar(&iaas, "provider", "", "Provider name")
	cmd.Flags().StringToStringVar(&data, "data", nil, "Provider parameters as key=value pairs")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("provider")

	return cmd
}

func newAccountUpdateCmd(app *app) *cobra.Command {
	var data map[string]string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
	}

	name := optStringFlag(cmd, "name", "New account name")
	cmd.Flags().StringToStringVar(&data, "data", nil, "Provider parameters as key=value pairs")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		req := domain.UpdateAccount{Name: name()}
		if cmd.Flags().Changed("data") {
			req.Data = data
		}

		account, err := app.client.UpdateAccount(cmd.Context(), id, req)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated account %s\n", account.Name)
		return nil
	}

	return cmd
}

func newAccountDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := app.client.DeleteAccount(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %d\n", id)
			return nil
		},
	}
}
