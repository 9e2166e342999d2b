package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRefreshCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload quotes and collections from the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runLoadSpinner(cmd.Context(), cmd.ErrOrStderr(), "Refreshing from store...", func(ctx context.Context) error {
				app.engine.Refresh(ctx)
				return nil
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d quotes, %d collections\n",
				len(app.mirror.Quotes), len(app.mirror.Collections))
			return err
		},
	}
}
