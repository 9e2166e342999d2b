package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/quotevault-cli/internal/domain"
)

func TestMirrorIsEmptyOnlyBeforeFirstReload(t *testing.T) {
	store := newFakeStore()
	mirror := NewMirror(store, nil)

	assert.True(t, mirror.IsEmpty())

	mirror.ReloadAll(context.Background())
	assert.False(t, mirror.IsEmpty())
}

func TestMirrorReloadAllInstallsBothCollections(t *testing.T) {
	store := newFakeStore()
	store.data["/quotes"] = map[string]any{
		"q1": map[string]any{"text": "Be kind", "author": "", "created_at": "2024-01-01T00:00:00Z"},
		"q2": map[string]any{
			"text":       "Stay curious",
			"author":     "Someone",
			"created_at": "2024-02-01T00:00:00Z",
			"fav_by":     map[string]any{"user-1": true},
		},
	}
	store.data["/collections"] = map[string]any{
		"c1": map[string]any{"name": "Stoicism", "created_at": "2024-01-15T00:00:00Z"},
	}

	mirror := NewMirror(store, nil)
	mirror.ReloadAll(context.Background())

	require.Len(t, mirror.Quotes, 2)
	assert.Equal(t, domain.QuoteID("q1"), mirror.Quotes["q1"].ID)
	assert.Equal(t, "Be kind", mirror.Quotes["q1"].Text)
	assert.True(t, mirror.Quotes["q2"].FavoritedByUser("user-1"))

	require.Len(t, mirror.Collections, 1)
	assert.Equal(t, "Stoicism", mirror.Collections["c1"].Name)
	assert.Equal(t, domain.CollectionID("c1"), mirror.Collections["c1"].ID)
}

func TestMirrorReloadAllFoldsFailuresToEmpty(t *testing.T) {
	store := newFakeStore()
	store.fetchErr["/quotes"] = errors.New("connection refused")
	store.data["/collections"] = map[string]any{
		"c1": map[string]any{"name": "Stoicism"},
	}

	mirror := NewMirror(store, nil)
	mirror.PutQuote(domain.Quote{ID: "stale"})
	mirror.ReloadAll(context.Background())

	assert.Empty(t, mirror.Quotes)
	assert.Len(t, mirror.Collections, 1)
	assert.False(t, mirror.IsEmpty())
}

func TestMirrorReloadAllReplacesWholesale(t *testing.T) {
	store := newFakeStore()
	store.data["/quotes"] = map[string]any{
		"q1": map[string]any{"text": "kept"},
	}

	mirror := NewMirror(store, nil)
	mirror.ReloadAll(context.Background())
	mirror.PutQuote(domain.Quote{ID: "optimistic", Text: "never persisted"})

	mirror.ReloadAll(context.Background())

	assert.Len(t, mirror.Quotes, 1)
	_, ok := mirror.Quotes["optimistic"]
	assert.False(t, ok)
}

func TestMirrorSetFavoriteTouchesOnlyTargetQuote(t *testing.T) {
	store := newFakeStore()
	mirror := NewMirror(store, nil)
	mirror.PutQuote(domain.Quote{ID: "q1"})
	mirror.PutQuote(domain.Quote{ID: "q2"})

	mirror.SetFavorite("q1", "user-1", true)

	assert.True(t, mirror.Quotes["q1"].FavoritedByUser("user-1"))
	assert.Empty(t, mirror.Quotes["q2"].FavoritedBy)

	mirror.SetFavorite("q1", "user-1", false)
	assert.False(t, mirror.Quotes["q1"].FavoritedByUser("user-1"))
}

func TestMirrorSetMembershipIgnoresUnknownQuote(t *testing.T) {
	mirror := NewMirror(newFakeStore(), nil)

	mirror.SetMembership("missing", "c1", true)
	mirror.SetFavorite("missing", "user-1", true)

	assert.Empty(t, mirror.Quotes)
}

func TestEmptyMirrorToSingleRowProjection(t *testing.T) {
	store := newFakeStore()
	store.data["/quotes"] = map[string]any{
		"x1": map[string]any{"text": "Be kind", "author": "", "created_at": "2024-01-01T00:00:00Z"},
	}

	mirror := NewMirror(store, nil)
	require.True(t, mirror.IsEmpty())

	mirror.ReloadAll(context.Background())

	session := &domain.Session{UserID: "user-1"}
	rows := ProjectQuotes(mirror, session, Query{Filter: FilterAll, Sort: SortNewestFirst})

	require.Len(t, rows, 1)
	assert.Equal(t, domain.QuoteID("x1"), rows[0].ID)
	assert.Equal(t, "Be kind", rows[0].Text)
	assert.Equal(t, "", rows[0].Author)
	assert.Equal(t, "01 Jan 2024, 00:00 UTC", rows[0].Added)
	assert.Equal(t, "Be kind", rows[0].CopyText)
}
