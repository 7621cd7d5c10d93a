package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-09", MonthKey(time.Date(2025, 9, 14, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01", MonthKey(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseMonthKey(t *testing.T) {
	parsed, err := ParseMonthKey("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())

	_, err = ParseMonthKey("march 2025")
	assert.Error(t, err)
}

func TestMonthKeysBetween(t *testing.T) {
	start := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	keys := MonthKeysBetween(start, end)
	assert.Equal(t, []string{"2025-11", "2025-12", "2026-01", "2026-02"}, keys)
}

func TestMonthKeysBetweenSingleMonth(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2025-06"}, MonthKeysBetween(day, day))
}

func TestAddFractionalMonthsWhole(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), AddFractionalMonths(start, 3))
}

func TestAddFractionalMonthsFraction(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	result := AddFractionalMonths(start, 1.5)

	// One calendar month plus about 15 days
	assert.Equal(t, time.February, result.Month())
	assert.InDelta(t, 16, result.Day(), 1)
}

func TestStartAndEndOfMonth(t *testing.T) {
	mid := time.Date(2025, 2, 14, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(mid))
	assert.Equal(t, time.Date(2025, 2, 28, 23, 59, 59, 999999999, time.UTC), EndOfMonth(mid))
}
