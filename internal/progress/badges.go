package progress

import (
	"sort"

	"github.com/2beens/playerprogress/internal/logs"
)

type BadgeID string

const (
	BadgeGoalStreak     BadgeID = "goal_streak"
	BadgeAssistTotal    BadgeID = "assist_total"
	BadgePracticeStreak BadgeID = "practice_streak"
	BadgeSpeedRecord    BadgeID = "speed_record"
)

const (
	goalStreakMatches     = 5
	assistTotalThreshold  = 10
	practiceStreakMinDays = 20
)

// Context is everything a badge predicate may look at: the player's full log history.
type Context struct {
	PracticeLogs []logs.PracticeLog
	MatchLogs    []logs.MatchLog
	SkillLogs    []logs.SkillLog
}

// Predicate must be pure, and return false on insufficient or malformed data.
type Predicate func(ctx Context) bool

type Badge struct {
	ID        BadgeID
	Name      string
	Icon      string
	Condition string
	// Evaluable is false for badges whose predicate cannot be computed yet
	// and therefore never reports achieved.
	Evaluable bool
	Predicate Predicate
}

type BadgeResult struct {
	ID        BadgeID `json:"id"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	Condition string  `json:"condition"`
	Evaluable bool    `json:"evaluable"`
	Achieved  bool    `json:"achieved"`
}

// DefaultCatalog returns the built-in badges. A new slice is returned on every call.
func DefaultCatalog() []Badge {
	return []Badge{
		{
			ID:        BadgeGoalStreak,
			Name:      "ゴールストリーク",
			Icon:      "⚽",
			Condition: "直近5試合連続で得点",
			Evaluable: true,
			Predicate: GoalStreak,
		},
		{
			ID:        BadgeAssistTotal,
			Name:      "アシストマスター",
			Icon:      "🎯",
			Condition: "通算10アシスト達成",
			Evaluable: true,
			Predicate: AssistTotal,
		},
		{
			ID:        BadgePracticeStreak,
			Name:      "練習の鬼",
			Icon:      "🔥",
			Condition: "20日連続で練習",
			Evaluable: true,
			Predicate: PracticeStreak,
		},
		{
			ID:        BadgeSpeedRecord,
			Name:      "スピードスター",
			Icon:      "⚡",
			Condition: "50m走で自己ベスト更新",
			Evaluable: false,
			Predicate: SpeedRecord,
		},
	}
}

// Evaluate runs every badge predicate of the catalog independently.
// A nil or panicking predicate is reported as not achieved.
func Evaluate(catalog []Badge, ctx Context) []BadgeResult {
	results := make([]BadgeResult, 0, len(catalog))
	for _, b := range catalog {
		results = append(results, BadgeResult{
			ID:        b.ID,
			Name:      b.Name,
			Icon:      b.Icon,
			Condition: b.Condition,
			Evaluable: b.Evaluable,
			Achieved:  safeEval(b.Predicate, ctx),
		})
	}
	return results
}

func safeEval(p Predicate, ctx Context) (achieved bool) {
	if p == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			achieved = false
		}
	}()
	return p(ctx)
}

// GoalStreak: the 5 most recent matches (by date, ties kept in list order) all have
// at least one goal. Matches with an unparsable date are not considered.
func GoalStreak(ctx Context) bool {
	type datedMatch struct {
		day   int64
		score string
	}

	matches := make([]datedMatch, 0, len(ctx.MatchLogs))
	for _, m := range ctx.MatchLogs {
		d, ok := parseDay(m.Date)
		if !ok {
			continue
		}
		matches = append(matches, datedMatch{day: d.Unix(), score: m.Score})
	}
	if len(matches) < goalStreakMatches {
		return false
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].day > matches[j].day
	})

	for _, m := range matches[:goalStreakMatches] {
		if Goals(m.score) <= 0 {
			return false
		}
	}
	return true
}

func AssistTotal(ctx Context) bool {
	total := 0
	for _, m := range ctx.MatchLogs {
		total += Assists(m.Score)
	}
	return total >= assistTotalThreshold
}

func PracticeStreak(ctx Context) bool {
	dates, _ := datesOf(ctx.PracticeLogs)
	return LongestConsecutiveDayStreak(dates) >= practiceStreakMinDays
}

// SpeedRecord needs a comparison of run50m times across the physical log history,
// which the badge context does not carry yet; it is never achieved.
func SpeedRecord(Context) bool {
	return false
}
