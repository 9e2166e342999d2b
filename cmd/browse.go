package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	quotesrender "github.com/bnema/quotevault-cli/internal/adapters/render/quotes"
	"github.com/bnema/quotevault-cli/internal/application"
	"github.com/bnema/quotevault-cli/internal/domain"
)

func newBrowseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse quotes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.loadSession(cmd.Context())
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				newBrowseModel(cmd.Context(), app, session),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
			)

			_, err = p.Run()
			return err
		},
	}
}

type browseLoadedMsg struct{}

type browseModel struct {
	ctx     context.Context
	app     *app
	session *domain.Session

	query     application.Query
	rows      []application.QuoteRow
	cursor    int
	showDates bool
	loading   bool
	status    string

	search    textinput.Model
	searching bool
}

func newBrowseModel(ctx context.Context, app *app, session *domain.Session) browseModel {
	search := textinput.New()
	search.Placeholder = "Search quotes or authors…"
	search.CharLimit = 200

	return browseModel{
		ctx:     ctx,
		app:     app,
		session: session,
		query: application.Query{
			Filter: application.FilterAll,
			Sort:   application.SortNewestFirst,
		},
		showDates: true,
		loading:   true,
		search:    search,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.load()
}

func (m browseModel) load() tea.Cmd {
	return func() tea.Msg {
		m.app.engine.Refresh(m.ctx)
		return browseLoadedMsg{}
	}
}

func (m *browseModel) reproject() {
	m.query.Search = m.search.Value()
	m.rows = application.ProjectQuotes(m.app.mirror, m.session, m.query)

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case browseLoadedMsg:
		m.loading = false
		m.reproject()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearching(msg)
		}
		if m.session.PendingDelete != nil {
			return m.updatePendingDelete(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m browseModel) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.reproject()
	return m, cmd
}

func (m browseModel) updatePendingDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		_ = m.app.engine.ConfirmDelete(m.ctx, m.session)
		m.status = "Deleted."
		m.reproject()
	case "n", "esc":
		m.app.engine.CancelDelete(m.session)
		m.status = "Cancelled."
	}
	return m, nil
}

func (m browseModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "s":
		m.query.Sort = nextSortMode(m.query.Sort)
		m.reproject()

	case "v":
		m.query.Filter, m.query.Collection = m.nextFilter()
		m.cursor = 0
		m.reproject()

	case "t":
		m.showDates = !m.showDates

	case "f":
		if row, ok := m.selectedRow(); ok {
			favorited, err := m.app.engine.ToggleFavorite(m.ctx, m.session, row.ID)
			if err == nil && favorited {
				m.status = "Favorited."
			} else {
				m.status = "Unfavorited."
			}
			m.reproject()
		}

	case "d":
		if row, ok := m.selectedRow(); ok {
			_ = m.app.engine.RequestDelete(m.session, row.ID)
		}

	case "r":
		m.loading = true
		m.status = ""
		return m, m.load()
	}

	return m, nil
}

func (m browseModel) selectedRow() (application.QuoteRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return application.QuoteRow{}, false
	}
	return m.rows[m.cursor], true
}

// nextFilter cycles all → favorites → each collection → all.
func (m browseModel) nextFilter() (application.ViewFilter, domain.CollectionID) {
	collections := application.ProjectCollections(m.app.mirror)

	switch m.query.Filter {
	case application.FilterAll:
		return application.FilterFavorites, ""
	case application.FilterFavorites:
		if len(collections) > 0 {
			return application.FilterCollection, collections[0].ID
		}
		return application.FilterAll, ""
	default:
		for i, collection := range collections {
			if collection.ID == m.query.Collection && i+1 < len(collections) {
				return application.FilterCollection, collections[i+1].ID
			}
		}
		return application.FilterAll, ""
	}
}

func nextSortMode(mode application.SortMode) application.SortMode {
	switch mode {
	case application.SortNewestFirst:
		return application.SortOldestFirst
	case application.SortOldestFirst:
		return application.SortAuthorAZ
	default:
		return application.SortNewestFirst
	}
}

func (m browseModel) View() string {
	if m.loading {
		return "Loading quotes...\n"
	}

	header := fmt.Sprintf("filter: %s • sort: %s", m.filterLabel(), sortLabel(m.query.Sort))

	var b strings.Builder
	b.WriteString(header + "\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	}
	b.WriteString("\n")

	b.WriteString(quotesrender.View(m.rows, quotesrender.RenderOptions{
		ShowDates:  m.showDates,
		ShowCursor: true,
		Cursor:     m.cursor,
	}))
	b.WriteString("\n\n")

	if m.session.PendingDelete != nil {
		b.WriteString(fmt.Sprintf("Delete %s? [y/n]\n", m.session.PendingDelete.Label))
		return b.String()
	}

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString("↑/↓ move • f fav • d delete • / search • s sort • v filter • t dates • r refresh • q quit")

	return b.String()
}

func (m browseModel) filterLabel() string {
	switch m.query.Filter {
	case application.FilterFavorites:
		return "favorites"
	case application.FilterCollection:
		if collection, ok := m.app.mirror.Collections[m.query.Collection]; ok && collection.Name != "" {
			return collection.Name
		}
		return string(m.query.Collection)
	default:
		return "all"
	}
}

func sortLabel(mode application.SortMode) string {
	switch mode {
	case application.SortOldestFirst:
		return "Oldest first"
	case application.SortAuthorAZ:
		return "Author A–Z"
	default:
		return "Newest first"
	}
}
