package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/quotevault-cli/internal/application"
)

func TestRenderSingleRow(t *testing.T) {
	output, err := Render([]application.QuoteRow{
		{
			ID:        "x1",
			Text:      "Be kind",
			Author:    "",
			CreatedAt: "2024-01-01T00:00:00Z",
			Added:     "01 Jan 2024, 00:00 UTC",
		},
	}, RenderOptions{ShowDates: true})

	require.NoError(t, err)
	assert.Contains(t, output, "1 shown")
	assert.Contains(t, output, "“Be kind”")
	assert.Contains(t, output, "Added: 01 Jan 2024, 00:00 UTC")
	assert.NotContains(t, output, "—")
}

func TestRenderAuthorAndFavoriteAndCollections(t *testing.T) {
	output, err := Render([]application.QuoteRow{
		{
			ID:          "x1",
			Text:        "Be kind",
			Author:      "Marcus Aurelius",
			Favorited:   true,
			Collections: []string{"Stoicism", "zen"},
		},
	}, RenderOptions{Title: "Favorites"})

	require.NoError(t, err)
	assert.Contains(t, output, "Favorites")
	assert.Contains(t, output, "— Marcus Aurelius")
	assert.Contains(t, output, "★")
	assert.Contains(t, output, "[Stoicism, zen]")
}

func TestRenderEmptyListHint(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "0 shown")
	assert.Contains(t, output, "No quotes yet")
}

func TestRenderEmptyTextPlaceholder(t *testing.T) {
	output, err := Render([]application.QuoteRow{{ID: "x1"}}, RenderOptions{ShowIDs: true})

	require.NoError(t, err)
	assert.Contains(t, output, "“(empty)”")
	assert.Contains(t, output, "id: x1")
}
