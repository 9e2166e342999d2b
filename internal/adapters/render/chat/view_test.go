package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/quotevault-cli/internal/domain"
)

func TestRenderMessages(t *testing.T) {
	output, err := Render([]domain.ChatMessage{
		{User: "ann", Text: "hello", TS: "2024-01-01T00:00:00Z"},
		{User: "bob", Text: "hi there", TS: "2024-01-01T00:00:05Z"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "2 messages")
	assert.Contains(t, output, "ann:")
	assert.Contains(t, output, "hello")
	assert.Contains(t, output, "01 Jan 2024, 00:00 UTC")
	assert.Contains(t, output, "bob:")
}

func TestRenderEmptyChat(t *testing.T) {
	output, err := Render(nil)

	require.NoError(t, err)
	assert.Contains(t, output, "0 messages")
	assert.Contains(t, output, "No chat messages yet.")
}

func TestRenderUnparseableTimestampShownRaw(t *testing.T) {
	output, err := Render([]domain.ChatMessage{
		{User: "ann", Text: "hello", TS: "garbage"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "garbage")
}
