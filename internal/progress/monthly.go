package progress

import (
	"errors"
	"fmt"
	"slices"

	"github.com/2beens/playerprogress/internal/logs"
)

var ErrUnknownField = errors.New("unknown field")

// ResolveFields checks the requested fields against the kind; none requested means all.
func ResolveFields(kind logs.Kind, fields []string) ([]string, error) {
	known := FieldsOf(kind)
	if known == nil {
		return nil, fmt.Errorf("%w: %s", logs.ErrUnknownKind, kind)
	}
	if len(fields) == 0 {
		return known, nil
	}
	for _, f := range fields {
		if !slices.Contains(known, f) {
			return nil, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, kind, f)
		}
	}
	return fields, nil
}

// MonthlyOf groups the entries of one kind of the input by month. Fields must be resolved.
func MonthlyOf(in Input, kind logs.Kind, fields []string) Buckets {
	var buckets Buckets
	switch kind {
	case logs.KindPhysical:
		buckets = GroupByMonth(in.Physical, fields, PhysicalMetric)
	case logs.KindSkill:
		buckets = GroupByMonth(in.Skill, fields, SkillMetric)
	case logs.KindMatch:
		buckets = GroupByMonth(in.Match, fields, MatchMetric)
	case logs.KindPractice:
		buckets = GroupByMonth(in.Practice, fields, PracticeMetric)
	}
	if buckets.Months == nil {
		buckets.Months = []MonthlyAggregate{}
	}
	return buckets
}
