package progress

import (
	"regexp"
	"strconv"
	"sync"
)

const (
	LabelGoals   = "得点"
	LabelAssists = "アシスト"
	UnitHours    = "時間"
)

var (
	// the number may not continue a longer one such as ".5" or "1,5"
	hoursRegex = regexp.MustCompile(`(?:^|[^\d.,])(\d+(?:\.\d+)?)` + regexp.QuoteMeta(UnitHours))

	// label -> compiled "<label>(\d+)" pattern
	labelPatterns sync.Map
)

func labelPattern(label string) *regexp.Regexp {
	if re, ok := labelPatterns.Load(label); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(regexp.QuoteMeta(label) + `(\d+)`)
	actual, _ := labelPatterns.LoadOrStore(label, re)
	return actual.(*regexp.Regexp)
}

// Extract returns the integer that immediately follows the first occurrence of label
// in text, e.g. Extract("得点2、アシスト1", "アシスト") == 1.
// A missing label, or a number that does not fit an int, yields 0
// (the metric is considered not recorded).
func Extract(text, label string) int {
	n, _ := extract(text, label)
	return n
}

// extract is Extract which also reports whether a number was actually parsed.
func extract(text, label string) (int, bool) {
	if text == "" || label == "" {
		return 0, false
	}
	m := labelPattern(label).FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractHours reads durations like "1.5時間" and returns the hours, or 0.
func ExtractHours(duration string) float64 {
	h, _ := extractHours(duration)
	return h
}

func extractHours(duration string) (float64, bool) {
	m := hoursRegex.FindStringSubmatch(duration)
	if m == nil {
		return 0, false
	}
	h, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return h, true
}

func Goals(score string) int {
	return Extract(score, LabelGoals)
}

func Assists(score string) int {
	return Extract(score, LabelAssists)
}

var leadingNumberRegex = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)

// ExtractFloat reads the leading number of optional measurement fields such as "8.2秒".
func ExtractFloat(text string) (float64, bool) {
	m := leadingNumberRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
