package logs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrUnknownKind = errors.New("unknown log kind")

// Kind can be one of:
//   - physical
//   - skill
//   - match
//   - practice
type Kind string

const (
	KindPhysical Kind = "physical"
	KindSkill    Kind = "skill"
	KindMatch    Kind = "match"
	KindPractice Kind = "practice"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPhysical, KindSkill, KindMatch, KindPractice:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
	}
	return k, nil
}

// MatchStatus can be one of: win, draw, lose
type MatchStatus string

const (
	StatusWin  MatchStatus = "win"
	StatusDraw MatchStatus = "draw"
	StatusLose MatchStatus = "lose"
)

func (s MatchStatus) IsValid() bool {
	return s == StatusWin || s == StatusDraw || s == StatusLose
}

type PhysicalLog struct {
	ID          int     `json:"id"`
	PlayerID    int     `json:"playerId"`
	Date        string  `json:"date"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Run50m      string  `json:"run50m,omitempty"`
	Vision      string  `json:"vision,omitempty"`
	Jump        string  `json:"jump,omitempty"`
	SitUp       string  `json:"situp,omitempty"`
	Flexibility string  `json:"flexibility,omitempty"`
}

type SkillLog struct {
	ID       int    `json:"id"`
	PlayerID int    `json:"playerId"`
	Date     string `json:"date"`
	Dribble  int    `json:"dribble"`
	Shoot    int    `json:"shoot"`
	Pass     int    `json:"pass"`
	Defense  int    `json:"defense"`
	Tactic   int    `json:"tactic"`
	Comment  string `json:"comment,omitempty"`
}

type MatchLog struct {
	ID       int         `json:"id"`
	PlayerID int         `json:"playerId"`
	Date     string      `json:"date"`
	Opponent string      `json:"opponent"`
	Result   string      `json:"result"`
	Score    string      `json:"score"`
	Status   MatchStatus `json:"status"`
	Note     string      `json:"note,omitempty"`
}

type PracticeLog struct {
	ID          int    `json:"id"`
	PlayerID    int    `json:"playerId"`
	Date        string `json:"date"`
	Duration    string `json:"duration"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (l PhysicalLog) LogDate() string { return l.Date }
func (l SkillLog) LogDate() string    { return l.Date }
func (l MatchLog) LogDate() string    { return l.Date }
func (l PracticeLog) LogDate() string { return l.Date }

// Total is the sum of the five skill counters.
func (l SkillLog) Total() int {
	return l.Dribble + l.Shoot + l.Pass + l.Defense + l.Tactic
}

// ValidateDate reports whether the date is a real calendar day in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("invalid date [%s], expected YYYY-MM-DD", date)
	}
	return nil
}
