package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2beens/playerprogress/internal/logs"
	"github.com/2beens/playerprogress/internal/progress"
)

func RenderSummary(w io.Writer, s progress.Summary, color bool) error {
	st := newStyles(color)
	var sb strings.Builder

	line := func(label, value string) {
		sb.WriteString(st.label.Render(label))
		sb.WriteString(st.value.Render(value))
		sb.WriteString("\n")
	}

	sb.WriteString(st.header.Render("Summary " + s.Month))
	sb.WriteString("\n\n")

	if s.LatestPhysical != nil {
		line("Height / weight", fmt.Sprintf("%.1f cm / %.1f kg (%s)", s.LatestPhysical.Height, s.LatestPhysical.Weight, s.LatestPhysical.Date))
	} else {
		line("Height / weight", st.muted.Render("no physical logs"))
	}
	line("Skill total", strconv.Itoa(s.SkillTotal))

	growth := fmt.Sprintf("%+.1f%% (%d → %d)", s.GrowthRate, s.LastMonthSkillScore, s.ThisMonthSkillScore)
	switch {
	case s.GrowthRate > 0:
		growth = st.success.Render(growth)
	case s.GrowthRate < 0:
		growth = st.failure.Render(growth)
	}
	line("Skill growth", growth)

	line("Goals / assists", fmt.Sprintf("%d / %d", s.TotalGoals, s.TotalAssists))
	line("W / D / L", fmt.Sprintf("%d / %d / %d (%.1f%%)", s.Wins, s.Draws, s.Losses, s.WinRate))
	line("Matches this month", strconv.Itoa(s.ThisMonthMatchCount))
	line("Practice hours", fmt.Sprintf("%.1f", s.TotalPracticeHours))
	line("Practices this month", strconv.Itoa(s.ThisMonthPracticeCount))
	line("Practice streak", fmt.Sprintf("%d days (longest %d)", s.CurrentPracticeStreak, s.LongestPracticeStreak))

	var notes []string
	for _, kind := range []logs.Kind{logs.KindPhysical, logs.KindSkill, logs.KindMatch, logs.KindPractice} {
		if n := s.Diagnostics.SkippedDates[kind]; n > 0 {
			notes = append(notes, fmt.Sprintf("%d %s entries with an invalid date", n, kind))
		}
		if n := s.Diagnostics.ZeroedMetrics[kind]; n > 0 {
			notes = append(notes, fmt.Sprintf("%d %s entries without a readable number", n, kind))
		}
	}
	if len(notes) > 0 {
		sb.WriteString("\n")
		for _, n := range notes {
			sb.WriteString(st.muted.Render("! " + n))
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func RenderBadges(w io.Writer, results []progress.BadgeResult, color bool) error {
	st := newStyles(color)
	t := newTable(st, "", "Badge", "Condition", "Status")
	for _, r := range results {
		status := st.muted.Render("-")
		switch {
		case !r.Evaluable:
			status = st.muted.Render("n/a")
		case r.Achieved:
			status = st.success.Render("achieved")
		}
		t.addRow(r.Icon, r.Name, r.Condition, status)
	}
	_, err := io.WriteString(w, t.render())
	return err
}

func RenderMonthly(w io.Writer, kind logs.Kind, fields []string, buckets progress.Buckets, color bool) error {
	st := newStyles(color)

	headers := append([]string{"Month", "Entries"}, fields...)
	t := newTable(st, headers...)
	for _, m := range buckets.Months {
		row := []string{m.Month, strconv.Itoa(m.Count)}
		for _, f := range fields {
			avg, ok := m.Averages[f]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, strconv.FormatFloat(avg, 'f', 2, 64))
		}
		t.addRow(row...)
	}

	var sb strings.Builder
	sb.WriteString(st.header.Render(fmt.Sprintf("Monthly %s averages", kind)))
	sb.WriteString("\n\n")
	sb.WriteString(t.render())
	if buckets.Skipped > 0 {
		sb.WriteString(st.muted.Render(fmt.Sprintf("! %d entries skipped, invalid date", buckets.Skipped)))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
