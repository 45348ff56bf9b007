package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accelleon/cloudmgmt/internal/adapters/render/table"
	"github.com/accelleon/cloudmgmt/internal/api"
	"github.com/accelleon/cloudmgmt/internal/domain"
)

func newUserCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage console users",
	}

	cmd.AddCommand(
		newUserListCmd(app),
		newUserGetCmd(app),
		newUserCreateCmd(app),
		newUserUpdateCmd(app),
		newUserDeleteCmd(app),
	)

	return cmd
}

func newUserListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
	}

	username := optStringFlag(cmd, "username", "Filter by username")
	firstName := optStringFlag(cmd, "first-name", "Filter by first name")
	lastName := optStringFlag(cmd, "last-name", "Filter by last name")
	isAdmin := optBoolFlag(cmd, "admin", "Filter by admin role")
	page := pageFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		resp, err := app.client.SearchUsers(cmd.Context(), api.UserSearch{
			Username:   username(),
			FirstName:  firstName(),
			LastName:   lastName(),
			IsAdmin:    isAdmin(),
			SearchPage: page(),
		})
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}

		_, _ = fmt.Fprint(cmd.OutOrStdout(), table.Users(resp.Results))
		return nil
	}

	return cmd
}

func newUserGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			user, err := app.client.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}

func newUserCreateCmd(app *app) *cobra.Command {
	var req domain.CreateUser

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.client.CreateUser(cmd.Context(), req)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Password")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().BoolVar(&req.IsAdmin, "admin", false, "Grant the admin role")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUserUpdateCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user",
		Args:  cobra.ExactArgs(1),
	}

	username := optStringFlag(cmd, "username", "New username")
	password := optStringFlag(cmd, "password", "New password")
	firstName := optStringFlag(cmd, "first-name", "New first name")
	lastName := optStringFlag(cmd, "last-name", "New last name")
	isAdmin := optBoolFlag(cmd, "admin", "Grant or revoke the admin role")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		user, err := app.client.UpdateUser(cmd.Context(), id, domain.UpdateUser{
			Username:  username(),
			Password:  password(),
			FirstName: firstName(),
			LastName:  lastName(),
			IsAdmin:   isAdmin(),
		})
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s\n", user.Username)
		return nil
	}

	return cmd
}

func newUserDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := app.client.DeleteUser(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %d\n", id)
			return nil
		},
	}
}
