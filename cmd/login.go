package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var username, password, twofaCode string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the console API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := domain.AuthRequest{Username: username, Password: password}
			if twofaCode != "" {
				req.TwoFACode = &twofaCode
			}

			resp, err := app.client.Login(cmd.Context(), req)
			if errors.Is(err, domain.ErrTwoFactorRequired) {
				return fmt.Errorf("this account requires a two-factor code; re-run with --twofa: %w", err)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", username)
			if resp.TwoFAEnabled {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Two-factor authentication is enabled on this account.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	cmd.Flags().StringVar(&twofaCode, "twofa", "", "Two-factor code")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.client.Logout(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
