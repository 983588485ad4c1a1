package progress

import (
	"time"

	"github.com/2beens/playerprogress/internal/logs"
)

// Input is the already-fetched log history of a single player.
type Input struct {
	Physical []logs.PhysicalLog `json:"physical"`
	Skill    []logs.SkillLog    `json:"skill"`
	Match    []logs.MatchLog    `json:"match"`
	Practice []logs.PracticeLog `json:"practice"`
}

// Diagnostics counts data that could not be used as-is.
type Diagnostics struct {
	// SkippedDates per kind: entries whose date does not parse as YYYY-MM-DD
	SkippedDates map[logs.Kind]int `json:"skippedDates"`
	// ZeroedMetrics per kind: free-text metrics (score, duration) that carried no number
	ZeroedMetrics map[logs.Kind]int `json:"zeroedMetrics"`
}

type Summary struct {
	LatestPhysical *logs.PhysicalLog `json:"latestPhysical"`
	LatestSkill    *logs.SkillLog    `json:"latestSkill"`

	SkillTotal         int     `json:"skillTotal"`
	TotalPracticeHours float64 `json:"totalPracticeHours"`
	TotalGoals         int     `json:"totalGoals"`
	TotalAssists       int     `json:"totalAssists"`
	// GrowthRate is the change in percent of this month's summed skill score vs last month's
	GrowthRate             float64 `json:"growthRate"`
	ThisMonthSkillScore    int     `json:"thisMonthSkillScore"`
	LastMonthSkillScore    int     `json:"lastMonthSkillScore"`
	ThisMonthMatchCount    int     `json:"thisMonthMatchCount"`
	ThisMonthPracticeCount int     `json:"thisMonthPracticeCount"`

	Wins    int     `json:"wins"`
	Draws   int     `json:"draws"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`

	CurrentPracticeStreak int `json:"currentPracticeStreak"`
	LongestPracticeStreak int `json:"longestPracticeStreak"`

	Month       string      `json:"month"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// BuildSummary derives the dashboard summary. Every category is computed on its own,
// so a missing category only leaves its own fields zeroed.
func BuildSummary(in Input, now time.Time) Summary {
	thisMonth := MonthOf(now)
	lastMonth := PreviousMonthOf(now)

	s := Summary{
		Month: thisMonth,
		Diagnostics: Diagnostics{
			SkippedDates:  make(map[logs.Kind]int),
			ZeroedMetrics: make(map[logs.Kind]int),
		},
	}

	// physical
	if i := latestIndex(in.Physical); i >= 0 {
		latest := in.Physical[i]
		s.LatestPhysical = &latest
	}
	s.Diagnostics.SkippedDates[logs.KindPhysical] = countInvalidDates(in.Physical)

	// skill
	if i := latestIndex(in.Skill); i >= 0 {
		latest := in.Skill[i]
		s.LatestSkill = &latest
		s.SkillTotal = latest.Total()
	}
	for _, l := range in.Skill {
		month, ok := MonthKey(l.Date)
		if !ok {
			s.Diagnostics.SkippedDates[logs.KindSkill]++
			continue
		}
		switch month {
		case thisMonth:
			s.ThisMonthSkillScore += l.Total()
		case lastMonth:
			s.LastMonthSkillScore += l.Total()
		}
	}
	s.GrowthRate = GrowthRate(float64(s.ThisMonthSkillScore), float64(s.LastMonthSkillScore))

	// matches
	for _, l := range in.Match {
		goals, goalsOK := extract(l.Score, LabelGoals)
		assists, assistsOK := extract(l.Score, LabelAssists)
		if !goalsOK && !assistsOK {
			s.Diagnostics.ZeroedMetrics[logs.KindMatch]++
		}
		s.TotalGoals += goals
		s.TotalAssists += assists

		switch l.Status {
		case logs.StatusWin:
			s.Wins++
		case logs.StatusDraw:
			s.Draws++
		case logs.StatusLose:
			s.Losses++
		}

		month, ok := MonthKey(l.Date)
		if !ok {
			s.Diagnostics.SkippedDates[logs.KindMatch]++
			continue
		}
		if month == thisMonth {
			s.ThisMonthMatchCount++
		}
	}
	if played := s.Wins + s.Draws + s.Losses; played > 0 {
		s.WinRate = float64(s.Wins) / float64(played) * 100
	}

	// practice
	for _, l := range in.Practice {
		hours, ok := extractHours(l.Duration)
		if !ok {
			s.Diagnostics.ZeroedMetrics[logs.KindPractice]++
		}
		s.TotalPracticeHours += hours

		month, ok := MonthKey(l.Date)
		if !ok {
			continue
		}
		if month == thisMonth {
			s.ThisMonthPracticeCount++
		}
	}
	practiceDates, skipped := datesOf(in.Practice)
	s.Diagnostics.SkippedDates[logs.KindPractice] = skipped
	s.CurrentPracticeStreak = CurrentStreak(practiceDates, now)
	s.LongestPracticeStreak = LongestConsecutiveDayStreak(practiceDates)

	return s
}

// latestIndex returns the index of the entry with the most recent valid date;
// on equal dates the earliest one in the list wins. -1 if there is none.
func latestIndex[E Dated](entries []E) int {
	idx := -1
	var latest time.Time
	for i, e := range entries {
		d, ok := parseDay(e.LogDate())
		if !ok {
			continue
		}
		if idx == -1 || d.After(latest) {
			idx = i
			latest = d
		}
	}
	return idx
}

func countInvalidDates[E Dated](entries []E) int {
	n := 0
	for _, e := range entries {
		if _, ok := parseDay(e.LogDate()); !ok {
			n++
		}
	}
	return n
}

// Latest returns a copy of the entry with the most recent valid date.
func Latest[E Dated](entries []E) (E, bool) {
	var zero E
	i := latestIndex(entries)
	if i < 0 {
		return zero, false
	}
	return entries[i], true
}
