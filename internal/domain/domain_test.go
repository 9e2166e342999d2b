package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWireTimeSecondPrecisionUTC(t *testing.T) {
	moment := time.Date(2025, 10, 23, 0, 50, 27, 999000000, time.UTC)
	assert.Equal(t, "2025-10-23T00:50:27Z", WireTime(moment))
}

func TestWireTimeConvertsZone(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	moment := time.Date(2024, 1, 1, 1, 0, 0, 0, zone)
	assert.Equal(t, "2024-01-01T00:00:00Z", WireTime(moment))
}

func TestDisplayTime(t *testing.T) {
	assert.Equal(t, "01 Jan 2024, 00:00 UTC", DisplayTime("2024-01-01T00:00:00Z"))
	assert.Equal(t, "23 Oct 2025, 00:50 UTC", DisplayTime("2025-10-23T00:50:27Z"))
}

func TestDisplayTimeFallsBackToRawString(t *testing.T) {
	assert.Equal(t, "not-a-date", DisplayTime("not-a-date"))
	assert.Equal(t, "", DisplayTime(""))
}

func TestQuoteMembershipHelpers(t *testing.T) {
	quote := Quote{
		FavoritedBy: map[UserID]bool{"user-1": true},
		Collections: map[CollectionID]bool{"col-1": true},
	}

	assert.True(t, quote.FavoritedByUser("user-1"))
	assert.False(t, quote.FavoritedByUser("user-2"))
	assert.True(t, quote.InCollection("col-1"))
	assert.False(t, quote.InCollection("col-2"))

	var empty Quote
	assert.False(t, empty.FavoritedByUser("user-1"))
	assert.False(t, empty.InCollection("col-1"))
}
