package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accelleon/cloudmgmt/internal/adapters/render/table"
	"github.com/accelleon/cloudmgmt/internal/api"
	"github.com/accelleon/cloudmgmt/internal/domain"
)

func newGroupCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage account groups",
	}

	cmd.AddCommand(
		newGroupListCmd(app),
		newGroupGetCmd(app),
		newGroupCreateCmd(app),
		newGroupUpdateCmd(app),
		newGroupDeleteCmd(app),
	)

	return cmd
}

func newGroupListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Args:  cobra.NoArgs,
	}

	name := optStringFlag(cmd, "name", "Filter by group name")
	page := pageFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		resp, err := app.client.SearchGroups(cmd.Context(), api.GroupSearch{
			Name:       name(),
			SearchPage: page(),
		})
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), table.Groups(resp.Results))
		return nil
	}

	return cmd
}

func newGroupGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			group, err := app.client.GetGroup(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), group)
		},
	}
}

func newGroupCreateCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			group, err := app.client.CreateGroup(cmd.Context(), domain.CreateGroup{Name: name})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created group %s (id %d)\n", group.Name, group.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Group name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGroupUpdateCmd(app *app) *cobra.Command {
	var accountIDs []int64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a group",
		Args:  cobra.ExactArgs(1),
	}

	name := optStringFlag(cmd, "name", "New group name")
	cmd.Flags().Int64SliceVar(&accountIDs, "accounts", nil, "Account ids belonging to the group")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		req := domain.UpdateGroup{Name: name()}
		if cmd.Flags().Changed("accounts") {
			req.AccountIDs = accountIDs
		}

		group, err := app.client.UpdateGroup(cmd.Context(), id, req)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated group %s\n", group.Name)
		return nil
	}

	return cmd
}

func newGroupDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := app.client.DeleteGroup(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted group %d\n", id)
			return nil
		},
	}
}
