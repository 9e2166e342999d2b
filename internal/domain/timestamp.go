package domain

import "time"

const displayTimeLayout = "02 Jan 2006, 15:04 UTC"

// WireTime renders a timestamp the way the store expects it: UTC ISO-8601
// with second precision and a trailing "Z".
func WireTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

// DisplayTime formats a stored timestamp for people. Strings that do not
// parse are shown as-is rather than dropped.
func DisplayTime(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}

	return parsed.UTC().Format(displayTimeLayout)
}
