package progress

import (
	"sort"
)

// Dated is implemented by every log entry kind.
type Dated interface {
	LogDate() string
}

// MonthlyAggregate holds the per-field sums and averages of one calendar month.
// Only fields with at least one sample appear in Sums and Averages.
type MonthlyAggregate struct {
	Month       string             `json:"month"`
	Sums        map[string]float64 `json:"fieldSums"`
	Averages    map[string]float64 `json:"fieldAverages"`
	FieldCounts map[string]int     `json:"fieldCounts"`
	Count       int                `json:"count"`
}

type Buckets struct {
	// Months is sorted ascending by month key
	Months []MonthlyAggregate `json:"months"`
	// Skipped is the number of entries left out because of an unparsable date
	Skipped int `json:"skipped"`
}

// Get returns the aggregate of the given YYYY-MM month.
func (b Buckets) Get(month string) (MonthlyAggregate, bool) {
	i := sort.Search(len(b.Months), func(i int) bool {
		return b.Months[i].Month >= month
	})
	if i < len(b.Months) && b.Months[i].Month == month {
		return b.Months[i], true
	}
	return MonthlyAggregate{}, false
}

// GroupByMonth groups entries into calendar-month buckets keyed by the YYYY-MM prefix
// of their date, and for each requested field accumulates a sum and a sample count.
// Entries with an unparsable date do not create a bucket; they are counted in Skipped.
func GroupByMonth[E Dated](entries []E, fields []string, metric MetricFunc[E]) Buckets {
	month2agg := make(map[string]*MonthlyAggregate)
	skipped := 0

	for _, e := range entries {
		month, ok := MonthKey(e.LogDate())
		if !ok {
			skipped++
			continue
		}

		agg, ok := month2agg[month]
		if !ok {
			agg = &MonthlyAggregate{
				Month:       month,
				Sums:        make(map[string]float64),
				Averages:    make(map[string]float64),
				FieldCounts: make(map[string]int, len(fields)),
			}
			for _, f := range fields {
				agg.FieldCounts[f] = 0
			}
			month2agg[month] = agg
		}
		agg.Count++

		if metric == nil {
			continue
		}
		for _, f := range fields {
			v, ok := metric(e, f)
			if !ok {
				continue
			}
			agg.Sums[f] += v
			agg.FieldCounts[f]++
		}
	}

	months := make([]MonthlyAggregate, 0, len(month2agg))
	for _, agg := range month2agg {
		for f, sum := range agg.Sums {
			agg.Averages[f] = sum / float64(agg.FieldCounts[f])
		}
		months = append(months, *agg)
	}

	// YYYY-MM sorts chronologically as text
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})

	return Buckets{
		Months:  months,
		Skipped: skipped,
	}
}
