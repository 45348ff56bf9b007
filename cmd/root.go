package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cloudmgmt",
		Short:         "Manage users, cloud accounts, billing and templates",
		Long:          "cloudmgmt is the operator CLI for the cloud management console: log in, manage users and provider accounts, inspect billing periods and metrics, and maintain dashboard templates.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newUserCmd(app),
		newAccountCmd(app),
		newProviderCmd(app),
		newBillingCmd(app),
		newTemplateCmd(app),
		newGroupCmd(app),
		newMetricCmd(app),
	)

	return rootCmd
}
