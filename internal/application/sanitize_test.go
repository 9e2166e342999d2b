package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanQuoteTextPlainTextUnchanged(t *testing.T) {
	assert.Equal(t, "plain text", CleanQuoteText("plain text"))
	assert.Equal(t, "", CleanQuoteText(""))
}

func TestCleanQuoteTextStripsMutedAddedBlock(t *testing.T) {
	assert.Equal(t, "Hello", CleanQuoteText(`<div class="muted">Added: X</div>Hello`))
	assert.Equal(t, "Hello", CleanQuoteText(`<div class='muted'>Added: 01 Jan 2024</div>Hello`))
	assert.Equal(t, "Hello", CleanQuoteText("<DIV CLASS=\"muted\">Added: line\nbreak</DIV>Hello"))
}

func TestCleanQuoteTextStripsResidualMarkup(t *testing.T) {
	assert.Equal(t, "Hi there", CleanQuoteText("Hi<br>there"))
	assert.Equal(t, "A B", CleanQuoteText("<p>A</p><p>B</p>"))
	assert.Equal(t, "wrapped", CleanQuoteText(`<span class="x">wrapped</span>`))
}

func TestCleanQuoteTextKeepsAngleBracketsWithoutKnownTags(t *testing.T) {
	// No div/span/br/p marker means the text is treated as plain.
	assert.Equal(t, "x < y > z", CleanQuoteText("x < y > z"))
}

func TestCleanQuoteTextTrims(t *testing.T) {
	assert.Equal(t, "Be kind", CleanQuoteText("  Be kind \n"))
}

func TestCleanQuoteTextIdempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		`<div class="muted">Added: X</div>Hello`,
		"Hi<br>there",
		"<p>A</p> <p>B</p>",
		"  spaced   out  ",
	}

	for _, input := range inputs {
		once := CleanQuoteText(input)
		assert.Equal(t, once, CleanQuoteText(once), "input %q", input)
	}
}
