package utils

import (
	"fmt"
	"time"
)

const MonthKeyFormat = "2006-01"

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// MonthKey renders a time as the YYYY-MM bucket key.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyFormat)
}

func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// MonthKeysBetween enumerates every month key from start through end inclusive.
func MonthKeysBetween(start, end time.Time) []string {
	var keys []string
	for m := StartOfMonth(start); !m.After(StartOfMonth(end)); m = m.AddDate(0, 1, 0) {
		keys = append(keys, MonthKey(m))
	}
	return keys
}

// AddFractionalMonths advances t by a possibly fractional number of months,
// approximating a month as 30.44 days for the fractional part. Used to place
// mileage-driven predictions on the calendar.
func AddFractionalMonths(t time.Time, months float64) time.Time {
	whole := int(months)
	frac := months - float64(whole)
	result := t.AddDate(0, whole, 0)
	return result.Add(time.Duration(frac * 30.44 * 24 * float64(time.Hour)))
}
