package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/quotevault-cli/internal/application"
	"github.com/bnema/quotevault-cli/internal/domain"
)

func newCollectionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage collections of quotes",
	}

	cmd.AddCommand(
		newCollectionListCmd(app),
		newCollectionAddCmd(app),
		newCollectionAssignCmd(app),
	)

	return cmd
}

func newCollectionListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.engine.Refresh(cmd.Context())

			for _, collection := range application.ProjectCollections(app.mirror) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", collection.ID, collection.Name)
			}

			return nil
		},
	}
}

func newCollectionAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a collection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return fmt.Errorf("collection name is empty")
			}

			collection, err := app.engine.AddCollection(cmd.Context(), name)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", collection.ID)
			return err
		},
	}
}

func newCollectionAssignCmd(app *app) *cobra.Command {
	var collectionIDs []string

	cmd := &cobra.Command{
		Use:   "assign <quote-id>",
		Short: "Set the collections a quote belongs to",
		Long:  "Replaces the quote's collection membership with exactly the given set. Only the changed memberships are written to the store.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.engine.Refresh(cmd.Context())

			desired := make(map[domain.CollectionID]bool, len(collectionIDs))
			for _, id := range collectionIDs {
				id = strings.TrimSpace(id)
				if id == "" {
					continue
				}
				if _, ok := app.mirror.Collections[domain.CollectionID(id)]; !ok {
					return fmt.Errorf("assign collections: %q: %w", id, domain.ErrCollectionNotFound)
				}
				desired[domain.CollectionID(id)] = true
			}

			added, removed, err := app.engine.SetCollections(cmd.Context(), domain.QuoteID(args[0]), desired)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d added, %d removed\n", len(added), len(removed))
			return err
		},
	}

	cmd.Flags().StringSliceVar(&collectionIDs, "collections", nil, "Collection ids the quote should belong to (repeat or comma-separate; empty clears)")

	return cmd
}
