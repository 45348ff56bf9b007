package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the logged-in user",
		Args:  cobra.NoArgs,
	}

	password := optStringFlag(cmd, "password", "New password (requires --old-password)")
	oldPassword := optStringFlag(cmd, "old-password", "Current password")
	firstName := optStringFlag(cmd, "first-name", "New first name")
	lastName := optStringFlag(cmd, "last-name", "New last name")
	twofaEnabled := optBoolFlag(cmd, "twofa", "Enable or disable two-factor authentication")
	twofaCode := optStringFlag(cmd, "twofa-code", "Two-factor code confirming the change")
	cmd.MarkFlagsRequiredTogether("password", "old-password")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		resp, err := app.client.UpdateMe(cmd.Context(), domain.UpdateSelf{
			Password:     password(),
			OldPassword:  oldPassword(),
			FirstName:    firstName(),
			LastName:     lastName(),
			TwoFAEnabled: twofaEnabled(),
			TwoFACode:    twofaCode(),
		})
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated profile for %s\n", resp.Username)
		if resp.TwoFAURI != "" {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Scan this URI with your authenticator, then re-run with --twofa-code to confirm:")
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), resp.TwoFAURI)
		}
		return nil
	}

	return cmd
}
