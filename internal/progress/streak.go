package progress

import (
	"sort"
	"time"
)

const oneDay = 24 * time.Hour

// uniqueDays returns the distinct calendar days of dates, sorted ascending.
// The input slice is not modified.
func uniqueDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = day(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

// LongestConsecutiveDayStreak returns the longest run of calendar-consecutive days
// present in dates. Duplicate days neither extend nor break a run.
func LongestConsecutiveDayStreak(dates []time.Time) int {
	days := uniqueDays(dates)
	if len(days) == 0 {
		return 0
	}

	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		delta := int(days[i].Sub(days[i-1]) / oneDay)
		if delta == 1 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}

	return longest
}

// CurrentStreak returns the length of the run of consecutive days that ends today or
// yesterday (relative to now); an older run is already broken and yields 0.
// Days after today are ignored.
func CurrentStreak(dates []time.Time, now time.Time) int {
	today := day(now)
	days := uniqueDays(dates)
	for len(days) > 0 && days[len(days)-1].After(today) {
		days = days[:len(days)-1]
	}
	if len(days) == 0 {
		return 0
	}

	last := days[len(days)-1]
	if int(today.Sub(last)/oneDay) > 1 {
		return 0
	}

	current := 1
	for i := len(days) - 1; i > 0; i-- {
		if int(days[i].Sub(days[i-1])/oneDay) != 1 {
			break
		}
		current++
	}
	return current
}

// ParseDates parses YYYY-MM-DD strings, returning the valid ones and the number skipped.
func ParseDates(dates []string) ([]time.Time, int) {
	parsed := make([]time.Time, 0, len(dates))
	skipped := 0
	for _, s := range dates {
		t, ok := parseDay(s)
		if !ok {
			skipped++
			continue
		}
		parsed = append(parsed, t)
	}
	return parsed, skipped
}

func datesOf[E Dated](entries []E) ([]time.Time, int) {
	raw := make([]string, len(entries))
	for i, e := range entries {
		raw[i] = e.LogDate()
	}
	return ParseDates(raw)
}
