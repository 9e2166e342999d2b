package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "qv",
		Short:         "QuoteVault (qv): save, browse and share quotes from the terminal",
		Long:          "qv (QuoteVault) is a terminal client for a shared quote board and a small chat, both stored in a hosted JSON tree. Mutations apply locally first and sync to the store in the background; `qv refresh` reconciles.",
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
		newQuoteCmd(app),
		newCollectionCmd(app),
		newChatCmd(app),
		newBrowseCmd(app),
		newRefreshCmd(app),
		newNameCmd(app),
	)

	return rootCmd
}
