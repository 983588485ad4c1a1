package progress

import (
	"github.com/2beens/playerprogress/internal/logs"
)

// MetricFunc reads a named numeric field out of an entry; false means the entry
// does not carry that field (or it could not be parsed).
type MetricFunc[E any] func(entry E, field string) (float64, bool)

// Fields available per kind, in display order.
var (
	PhysicalFields = []string{"height", "weight", "run50m", "vision", "jump", "situp", "flexibility"}
	SkillFields    = []string{"dribble", "shoot", "pass", "defense", "tactic", "total"}
	MatchFields    = []string{"goals", "assists", "win"}
	PracticeFields = []string{"hours"}
)

func FieldsOf(kind logs.Kind) []string {
	switch kind {
	case logs.KindPhysical:
		return PhysicalFields
	case logs.KindSkill:
		return SkillFields
	case logs.KindMatch:
		return MatchFields
	case logs.KindPractice:
		return PracticeFields
	default:
		return nil
	}
}

func PhysicalMetric(l logs.PhysicalLog, field string) (float64, bool) {
	switch field {
	case "height":
		return l.Height, true
	case "weight":
		return l.Weight, true
	case "run50m":
		return ExtractFloat(l.Run50m)
	case "vision":
		return ExtractFloat(l.Vision)
	case "jump":
		return ExtractFloat(l.Jump)
	case "situp":
		return ExtractFloat(l.SitUp)
	case "flexibility":
		return ExtractFloat(l.Flexibility)
	default:
		return 0, false
	}
}

func SkillMetric(l logs.SkillLog, field string) (float64, bool) {
	switch field {
	case "dribble":
		return float64(l.Dribble), true
	case "shoot":
		return float64(l.Shoot), true
	case "pass":
		return float64(l.Pass), true
	case "defense":
		return float64(l.Defense), true
	case "tactic":
		return float64(l.Tactic), true
	case "total":
		return float64(l.Total()), true
	default:
		return 0, false
	}
}

// MatchMetric treats an unrecorded goal/assist count as 0, same as the summary totals.
func MatchMetric(l logs.MatchLog, field string) (float64, bool) {
	switch field {
	case "goals":
		return float64(Goals(l.Score)), true
	case "assists":
		return float64(Assists(l.Score)), true
	case "win":
		if l.Status == logs.StatusWin {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func PracticeMetric(l logs.PracticeLog, field string) (float64, bool) {
	if field != "hours" {
		return 0, false
	}
	return ExtractHours(l.Duration), true
}
