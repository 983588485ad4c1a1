package advice

import (
	"fmt"

	"github.com/2beens/playerprogress/internal/logs"
	"github.com/2beens/playerprogress/internal/progress"
)

// GrowthMetrics is the body of a growth prediction request.
// Optional measurements are left out when the log does not carry a number for them.
type GrowthMetrics struct {
	Date        string   `json:"date"`
	Height      float64  `json:"height"`
	Weight      float64  `json:"weight"`
	Run50m      *float64 `json:"run50m,omitempty"`
	Vision      *float64 `json:"vision,omitempty"`
	Jump        *float64 `json:"jump,omitempty"`
	SitUp       *float64 `json:"situp,omitempty"`
	Flexibility *float64 `json:"flexibility,omitempty"`
}

type Prediction struct {
	PredictedHeight float64 `json:"predictedHeight"`
	PredictedWeight float64 `json:"predictedWeight"`
	Horizon         string  `json:"horizon"`
	Comment         string  `json:"comment"`
}

type AdviceRequest struct {
	Month                 string  `json:"month"`
	SkillTotal            int     `json:"skillTotal"`
	GrowthRate            float64 `json:"growthRate"`
	TotalGoals            int     `json:"totalGoals"`
	TotalAssists          int     `json:"totalAssists"`
	WinRate               float64 `json:"winRate"`
	TotalPracticeHours    float64 `json:"totalPracticeHours"`
	CurrentPracticeStreak int     `json:"currentPracticeStreak"`
}

type Advice struct {
	Message string   `json:"message"`
	Focus   []string `json:"focus"`
}

// ServiceError is returned when the advice service cannot answer.
// UserMessage is safe to show to the end user.
type ServiceError struct {
	UserMessage string
	Err         error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("advice service: %s", e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func GrowthMetricsFrom(l logs.PhysicalLog) GrowthMetrics {
	optional := func(field string) *float64 {
		if v, ok := progress.PhysicalMetric(l, field); ok {
			return &v
		}
		return nil
	}
	return GrowthMetrics{
		Date:        l.Date,
		Height:      l.Height,
		Weight:      l.Weight,
		Run50m:      optional("run50m"),
		Vision:      optional("vision"),
		Jump:        optional("jump"),
		SitUp:       optional("situp"),
		Flexibility: optional("flexibility"),
	}
}

func AdviceRequestFrom(s progress.Summary) AdviceRequest {
	return AdviceRequest{
		Month:                 s.Month,
		SkillTotal:            s.SkillTotal,
		GrowthRate:            s.GrowthRate,
		TotalGoals:            s.TotalGoals,
		TotalAssists:          s.TotalAssists,
		WinRate:               s.WinRate,
		TotalPracticeHours:    s.TotalPracticeHours,
		CurrentPracticeStreak: s.CurrentPracticeStreak,
	}
}
