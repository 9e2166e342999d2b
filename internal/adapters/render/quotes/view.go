package quotes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/quotevault-cli/internal/application"
)

type RenderOptions struct {
	Title     string
	ShowDates bool
	ShowIDs   bool
	// ShowCursor marks the row at Cursor for interactive surfaces.
	ShowCursor bool
	Cursor     int
}

// View renders rows without spawning a program, for embedding inside a live
// bubbletea model.
func View(rows []application.QuoteRow, opts RenderOptions) string {
	return renderView(rows, opts, newStyles())
}

func renderView(rows []application.QuoteRow, opts RenderOptions, s styles) string {
	title := opts.Title
	if title == "" {
		title = "Quotes"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("%d shown", len(rows))),
	}

	if len(rows) == 0 {
		lines = append(lines, s.empty.Render("No quotes yet — add one with `qv quote add`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, row := range rows {
		rendered := renderRow(row, opts, s)
		if opts.ShowCursor && i == opts.Cursor {
			rendered = cursorPrefix(rendered)
		}
		lines = append(lines, s.section.Render(rendered))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func cursorPrefix(block string) string {
	parts := strings.Split(block, "\n")
	for i, part := range parts {
		if i == 0 {
			parts[i] = "▸ " + part
		} else {
			parts[i] = "  " + part
		}
	}
	return strings.Join(parts, "\n")
}

func renderRow(row application.QuoteRow, opts RenderOptions, s styles) string {
	text := row.Text
	if text == "" {
		text = "(empty)"
	}

	first := s.text.Render("“" + text + "”")
	if row.Favorited {
		first += " " + s.fav.Render("★")
	}

	parts := []string{first}
	if row.Author != "" {
		parts = append(parts, s.author.Render("— "+row.Author))
	}

	var meta []string
	if opts.ShowDates && row.Added != "" {
		meta = append(meta, "Added: "+row.Added)
	}
	if opts.ShowIDs {
		meta = append(meta, "id: "+string(row.ID))
	}
	if len(meta) > 0 {
		parts = append(parts, s.meta.Render(strings.Join(meta, "  ")))
	}

	if len(row.Collections) > 0 {
		parts = append(parts, s.tags.Render("["+strings.Join(row.Collections, ", ")+"]"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
