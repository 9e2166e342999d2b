package application

import (
	"regexp"
	"strings"
)

// An old revision of the web client accidentally stored its own rendered
// markup inside quote text. CleanQuoteText undoes that: the injected
// "muted / Added:" block is removed outright, and if other markup remains
// every tag is dropped and whitespace runs collapse to a single space.
// Plain text passes through untouched and the cleanup is idempotent.
var (
	mutedAddedBlockRe = regexp.MustCompile(`(?is)<div\s+class=(?:"muted"|'muted')>\s*Added:\s*.*?</div>`)
	markupTagRe       = regexp.MustCompile(`</?[^>]+>`)
	whitespaceRunRe   = regexp.MustCompile(`\s{2,}`)
)

func CleanQuoteText(text string) string {
	if text == "" {
		return ""
	}

	s := strings.TrimSpace(text)
	s = strings.TrimSpace(mutedAddedBlockRe.ReplaceAllString(s, ""))

	lower := strings.ToLower(s)
	if strings.Contains(lower, "<div") || strings.Contains(lower, "</div") ||
		strings.Contains(lower, "<span") || strings.Contains(lower, "<br") ||
		strings.Contains(lower, "<p") {
		s = markupTagRe.ReplaceAllString(s, " ")
		s = strings.TrimSpace(whitespaceRunRe.ReplaceAllString(s, " "))
	}

	return s
}
