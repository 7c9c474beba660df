package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tp",
		Short:         "TreinoPago CLI: manage training clients, plans, and billing",
		Long:          "tp (TreinoPago CLI) manages fitness-training clients, subscription plans, and charges against the TreinoPago API, plus the account's PIX key and local theme preference.",
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
		newClientsCmd(app),
		newPlansCmd(app),
		newBillingsCmd(app),
		newSettingsCmd(app),
	)

	return rootCmd
}
