package application

import (
	"sort"
	"strings"

	"github.com/bnema/quotevault-cli/internal/domain"
)

type SortMode string

const (
	SortNewestFirst SortMode = "newest"
	SortOldestFirst SortMode = "oldest"
	SortAuthorAZ    SortMode = "author"
)

func (m SortMode) Valid() bool {
	switch m {
	case SortNewestFirst, SortOldestFirst, SortAuthorAZ:
		return true
	default:
		return false
	}
}

type ViewFilter string

const (
	FilterAll        ViewFilter = "all"
	FilterFavorites  ViewFilter = "favorites"
	FilterCollection ViewFilter = "collection"
)

// Query selects and orders quotes for display. Collection is only consulted
// when Filter is FilterCollection.
type Query struct {
	Filter     ViewFilter
	Collection domain.CollectionID
	Search     string
	Sort       SortMode
}

// QuoteRow is one display row: sanitized text, resolved collection names,
// and the assembled clipboard string.
type QuoteRow struct {
	ID          domain.QuoteID
	Text        string
	Author      string
	CreatedAt   string
	Added       string
	Favorited   bool
	Collections []string
	CopyText    string
}

// ProjectQuotes derives display rows from the mirror. It is a pure function
// of its inputs and safe to recompute on every render: filtering happens
// first, then search, then the sort.
func ProjectQuotes(mirror *Mirror, session *domain.Session, query Query) []QuoteRow {
	rows := make([]QuoteRow, 0, len(mirror.Quotes))

	for id, quote := range mirror.Quotes {
		switch query.Filter {
		case FilterFavorites:
			if !quote.FavoritedByUser(session.UserID) {
				continue
			}
		case FilterCollection:
			if !quote.InCollection(query.Collection) {
				continue
			}
		}

		rows = append(rows, quoteRow(mirror, session, id, quote))
	}

	if needle := strings.ToLower(strings.TrimSpace(query.Search)); needle != "" {
		matched := rows[:0]
		for _, row := range rows {
			if strings.Contains(strings.ToLower(row.Text), needle) ||
				strings.Contains(strings.ToLower(row.Author), needle) {
				matched = append(matched, row)
			}
		}
		rows = matched
	}

	switch query.Sort {
	case SortOldestFirst:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt < rows[j].CreatedAt })
	case SortAuthorAZ:
		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].Author) < strings.ToLower(rows[j].Author)
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt > rows[j].CreatedAt })
	}

	return rows
}

// ProjectCollections lists collections ordered by name, then id for ties.
func ProjectCollections(mirror *Mirror) []domain.Collection {
	collections := make([]domain.Collection, 0, len(mirror.Collections))
	for _, collection := range mirror.Collections {
		collections = append(collections, collection)
	}

	sort.Slice(collections, func(i, j int) bool {
		a := strings.ToLower(collections[i].Name)
		b := strings.ToLower(collections[j].Name)
		if a != b {
			return a < b
		}
		return collections[i].ID < collections[j].ID
	})

	return collections
}

func quoteRow(mirror *Mirror, session *domain.Session, id domain.QuoteID, quote domain.Quote) QuoteRow {
	text := CleanQuoteText(quote.Text)
	author := strings.TrimSpace(quote.Author)

	copyText := text
	if author != "" {
		copyText += " — " + author
	}

	var collections []string
	for collectionID := range quote.Collections {
		name := string(collectionID)
		if collection, ok := mirror.Collections[collectionID]; ok && collection.Name != "" {
			name = collection.Name
		}
		collections = append(collections, name)
	}
	sort.Strings(collections)

	return QuoteRow{
		ID:          id,
		Text:        text,
		Author:      author,
		CreatedAt:   quote.CreatedAt,
		Added:       domain.DisplayTime(quote.CreatedAt),
		Favorited:   quote.FavoritedByUser(session.UserID),
		Collections: collections,
		CopyText:    copyText,
	}
}
