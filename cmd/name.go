package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name [display-name]",
		Short: "Show or set the display name used in chat",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.loadSession(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if session.Username == "" {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "(not set)")
				} else {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), session.Username)
				}
				return err
			}

			session.Username = strings.TrimSpace(args[0])
			if err := app.sessions.Save(cmd.Context(), *session); err != nil {
				return fmt.Errorf("save session: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Chatting as %s\n", session.Username)
			return err
		},
	}
}
