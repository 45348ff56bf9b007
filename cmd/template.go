package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accelleon/cloudmgmt/internal/adapters/render/table"
	"github.com/accelleon/cloudmgmt/internal/api"
	"github.com/accelleon/cloudmgmt/internal/domain"
)

func newTemplateCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage dashboard templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateGetCmd(app),
		newTemplateCreateCmd(app),
		newTemplateUpdateCmd(app),
		newTemplateDeleteCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Args:  cobra.NoArgs,
	}

	name := optStringFlag(cmd, "name", "Filter by template name")
	page := pageFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		resp, err := app.client.SearchTemplates(cmd.Context(), api.TemplateSearch{
			Name:       name(),
			SearchPage: page(),
		})
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), table.Templates(resp.Results))
		return nil
	}

	return cmd
}

func newTemplateGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			tpl, err := app.client.GetTemplate(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), tpl)
		},
	}
}

func newTemplateCreateCmd(app *app) *cobra.Command {
	var req domain.CreateTemplate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tpl, err := app.client.CreateTemplate(cmd.Context(), req)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created template %s (id %d)\n", tpl.Name, tpl.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Template name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Template description")
	cmd.Flags().Int64SliceVar(&req.Order, "order", nil, "Account ids in display order")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTemplateUpdateCmd(app *app) *cobra.Command {
	var order []int64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a template",
		Args:  cobra.ExactArgs(1),
	}

	name := optStringFlag(cmd, "name", "New template name")
	description := optStringFlag(cmd, "description", "New template description")
	cmd.Flags().Int64SliceVar(&order, "order", nil, "Account ids in display order")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		req := domain.UpdateTemplate{
			Name:        name(),
			Description: description(),
		}
		if cmd.Flags().Changed("order") {
			req.Order = order
		}

		tpl, err := app.client.UpdateTemplate(cmd.Context(), id, req)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated template %s\n", tpl.Name)
		return nil
	}

	return cmd
}

func newTemplateDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := app.client.DeleteTemplate(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted template %d\n", id)
			return nil
		},
	}
}
