package progress

import (
	"time"

	"github.com/2beens/playerprogress/internal/logs"
)

const monthLayout = "2006-01"

// parseDay parses a YYYY-MM-DD log date into UTC midnight of that day.
func parseDay(date string) (time.Time, bool) {
	t, err := time.Parse(logs.DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MonthKey returns the YYYY-MM bucket of a log date, and false if the date is not valid.
func MonthKey(date string) (string, bool) {
	if _, ok := parseDay(date); !ok {
		return "", false
	}
	return date[:7], true
}

// MonthOf returns the YYYY-MM key of the calendar month t falls in (in t's location).
func MonthOf(t time.Time) string {
	return t.Format(monthLayout)
}

// PreviousMonthOf returns the key of the calendar month before t.
// Computed from the 1st of the month so that e.g. March 31 maps to February.
func PreviousMonthOf(t time.Time) string {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, -1, 0).Format(monthLayout)
}

// day normalizes t to UTC midnight of its calendar day (as seen in t's location).
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
