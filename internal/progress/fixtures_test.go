package progress_test

import (
	"fmt"
	"time"

	"github.com/2beens/playerprogress/internal/logs"
	"github.com/2beens/playerprogress/internal/progress"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	fixtureStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	fixtureEnd   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

func fakeDate(f *gofakeit.Faker) string {
	// roughly one in ten dates is legacy garbage
	if f.IntRange(0, 9) == 0 {
		return f.RandomString([]string{"", "昨日", "2024/06/01", "2024-02-30"})
	}
	return f.DateRange(fixtureStart, fixtureEnd).Format(logs.DateLayout)
}

func fakeInput(seed int64, n int) progress.Input {
	f := gofakeit.New(seed)
	in := progress.Input{}
	for i := 0; i < n; i++ {
		in.Physical = append(in.Physical, logs.PhysicalLog{
			ID:       i,
			PlayerID: 1,
			Date:     fakeDate(f),
			Height:   f.Float64Range(120, 170),
			Weight:   f.Float64Range(25, 60),
			Run50m:   fmt.Sprintf("%.1f秒", f.Float64Range(7, 10)),
		})
		in.Skill = append(in.Skill, logs.SkillLog{
			ID:       i,
			PlayerID: 1,
			Date:     fakeDate(f),
			Dribble:  f.IntRange(1, 5),
			Shoot:    f.IntRange(1, 5),
			Pass:     f.IntRange(1, 5),
			Defense:  f.IntRange(1, 5),
			Tactic:   f.IntRange(1, 5),
			Comment:  f.Sentence(5),
		})
		in.Match = append(in.Match, logs.MatchLog{
			ID:       i,
			PlayerID: 1,
			Date:     fakeDate(f),
			Opponent: f.Company(),
			Result:   fmt.Sprintf("%d-%d", f.IntRange(0, 5), f.IntRange(0, 5)),
			Score:    fmt.Sprintf("得点%d、アシスト%d", f.IntRange(0, 3), f.IntRange(0, 3)),
			Status:   logs.MatchStatus(f.RandomString([]string{"win", "draw", "lose"})),
		})
		in.Practice = append(in.Practice, logs.PracticeLog{
			ID:       i,
			PlayerID: 1,
			Date:     fakeDate(f),
			Duration: fmt.Sprintf("%.1f時間", f.Float64Range(0.5, 3)),
			Title:    f.Word(),
		})
	}
	return in
}
