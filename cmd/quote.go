package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	quotesrender "github.com/bnema/quotevault-cli/internal/adapters/render/quotes"
	"github.com/bnema/quotevault-cli/internal/application"
	"github.com/bnema/quotevault-cli/internal/domain"
)

func newQuoteCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Manage quotes",
	}

	cmd.AddCommand(
		newQuoteListCmd(app),
		newQuoteAddCmd(app),
		newQuoteRemoveCmd(app),
		newQuoteFavCmd(app),
	)

	return cmd
}

func newQuoteListCmd(app *app) *cobra.Command {
	var search string
	var sortMode string
	var favorites bool
	var collectionID string
	var showDates bool
	var showIDs bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes with search, sort and filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.loadSession(cmd.Context())
			if err != nil {
				return err
			}

			query := application.Query{
				Filter: application.FilterAll,
				Search: search,
				Sort:   application.SortMode(sortMode),
			}
			if !query.Sort.Valid() {
				return fmt.Errorf("unsupported sort mode %q (newest, oldest, author)", sortMode)
			}
			if favorites && collectionID != "" {
				return fmt.Errorf("--favorites and --collection are mutually exclusive")
			}
			if favorites {
				query.Filter = application.FilterFavorites
			}
			if collectionID != "" {
				query.Filter = application.FilterCollection
				query.Collection = domain.CollectionID(collectionID)
			}

			app.engine.Refresh(cmd.Context())
			rows := application.ProjectQuotes(app.mirror, session, query)

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(rows)
			}

			output, err := quotesrender.Render(rows, quotesrender.RenderOptions{
				ShowDates: showDates,
				ShowIDs:   showIDs,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive match against text or author")
	cmd.Flags().StringVar(&sortMode, "sort", string(application.SortNewestFirst), "Sort mode: newest, oldest or author")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "Only quotes you favorited")
	cmd.Flags().StringVar(&collectionID, "collection", "", "Only quotes in the given collection id")
	cmd.Flags().BoolVar(&showDates, "show-dates", true, "Show creation dates")
	cmd.Flags().BoolVar(&showIDs, "show-ids", false, "Show store-assigned ids")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newQuoteAddCmd(app *app) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Save a new quote",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.loadSession(cmd.Context())
			if err != nil {
				return err
			}

			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("quote text is empty")
			}

			quote, err := app.engine.AddQuote(cmd.Context(), session, text, author)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", quote.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Author attribution (optional)")

	return cmd
}

func newQuoteRemoveCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a quote (asks for confirmation)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.loadSession(cmd.Context())
			if err != nil {
				return err
			}

			app.engine.Refresh(cmd.Context())

			if err := app.engine.RequestDelete(session, domain.QuoteID(args[0])); err != nil {
				return err
			}

			if !yes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Delete %s? [y/N]: ", session.PendingDelete.Label)

				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if answer := strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
					app.engine.CancelDelete(session)
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return err
				}
			}

			if err := app.engine.ConfirmDelete(cmd.Context(), session); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return err
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newQuoteFavCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fav <id>",
		Short: "Toggle a quote in your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.loadSession(cmd.Context())
			if err != nil {
				return err
			}

			app.engine.Refresh(cmd.Context())

			favorited, err := app.engine.ToggleFavorite(cmd.Context(), session, domain.QuoteID(args[0]))
			if err != nil {
				return err
			}

			if favorited {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Favorited.")
			} else {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Unfavorited.")
			}
			return err
		},
	}
}
