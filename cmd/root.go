package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "uadm",
		Short:         "User administration console: manage the account roster from the terminal",
		Long:          "uadm signs an operator in against the admin backend and manages the account roster: list users, select a subset, and apply bulk block/unblock/delete actions.",
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
		newRegisterCmd(app),
		newForgotPasswordCmd(app),
		newWhoamiCmd(app),
		newUsersCmd(app),
	)

	return rootCmd
}
