//go:build integration_test || all_tests

package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/playerprogress/internal/dashboard"
	"github.com/2beens/playerprogress/internal/logs"
	"github.com/2beens/playerprogress/internal/middleware"
	"github.com/2beens/playerprogress/internal/progress"
	"github.com/2beens/playerprogress/pkg"
)

func (s *IntegrationTestSuite) newRequest(method, path string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, serverEndpoint+path, reader)
	s.Require().NoError(err)
	req.Header.Set(middleware.TokenHeader, testToken)
	if body != nil {
		req.Header.Set("Content-Type", pkg.ContentType.JSON)
	}
	return req
}

func (s *IntegrationTestSuite) do(req *http.Request, expectedStatus int, out any) *http.Response {
	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().Equal(expectedStatus, resp.StatusCode, string(respBytes))

	if out != nil {
		s.Require().NoError(json.Unmarshal(respBytes, out))
	}
	return resp
}

func (s *IntegrationTestSuite) addPlayer(name string) logs.Player {
	var player logs.Player
	s.do(s.newRequest(http.MethodPost, "/players", logs.Player{Name: name}), http.StatusCreated, &player)
	s.Require().NotZero(player.ID)
	s.Equal(name, player.Name)
	return player
}

func (s *IntegrationTestSuite) TestUnauthorized() {
	req, err := http.NewRequest(http.MethodGet, serverEndpoint+"/players/1/summary", nil)
	s.Require().NoError(err)
	s.do(req, http.StatusUnauthorized, nil)

	req.Header.Set(middleware.TokenHeader, "wrong")
	s.do(req, http.StatusUnauthorized, nil)
}

func (s *IntegrationTestSuite) TestLogs_AddListDelete() {
	player := s.addPlayer("Taro")
	base := fmt.Sprintf("/players/%d/logs", player.ID)

	var added logs.SkillLog
	s.do(s.newRequest(http.MethodPost, base+"/skill", logs.SkillLog{
		Date:    "2024-05-01",
		Dribble: 3,
		Shoot:   4,
		Pass:    2,
		Defense: 3,
		Tactic:  1,
	}), http.StatusCreated, &added)
	s.NotZero(added.ID)
	s.Equal(player.ID, added.PlayerID)

	var listed []logs.SkillLog
	s.do(s.newRequest(http.MethodGet, base+"/skill", nil), http.StatusOK, &listed)
	s.Require().Len(listed, 1)
	s.Equal(13, listed[0].Total())

	// invalid match status is rejected before touching the db
	s.do(s.newRequest(http.MethodPost, base+"/match", logs.MatchLog{
		Date:   "2024-05-02",
		Status: "maybe",
	}), http.StatusBadRequest, nil)

	var deleted logs.DeleteResponse
	s.do(s.newRequest(http.MethodDelete, fmt.Sprintf("%s/skill/%d", base, added.ID), nil), http.StatusOK, &deleted)
	s.Equal(added.ID, deleted.DeletedID)
	s.Equal(logs.KindSkill, deleted.Kind)

	s.do(s.newRequest(http.MethodDelete, fmt.Sprintf("%s/skill/%d", base, added.ID), nil), http.StatusNotFound, nil)

	listed = nil
	s.do(s.newRequest(http.MethodGet, base+"/skill", nil), http.StatusOK, &listed)
	s.Empty(listed)
}

func (s *IntegrationTestSuite) TestLogs_UnknownPlayer() {
	s.do(s.newRequest(http.MethodPost, "/players/999999/logs/practice", logs.PracticeLog{
		Date:     "2024-05-01",
		Duration: "1時間",
		Title:    "passing",
	}), http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestDashboard() {
	player := s.addPlayer("Hanako")
	base := fmt.Sprintf("/players/%d", player.ID)

	s.do(s.newRequest(http.MethodPost, base+"/logs/physical", logs.PhysicalLog{
		Date: "2024-04-10", Height: 140, Weight: 35, Run50m: "9.0",
	}), http.StatusCreated, nil)
	s.do(s.newRequest(http.MethodPost, base+"/logs/physical", logs.PhysicalLog{
		Date: "2024-05-10", Height: 142, Weight: 36, Run50m: "8.5",
	}), http.StatusCreated, nil)
	s.do(s.newRequest(http.MethodPost, base+"/logs/skill", logs.SkillLog{
		Date: "2024-05-03", Dribble: 5, Shoot: 5, Pass: 5, Defense: 5, Tactic: 5,
	}), http.StatusCreated, nil)
	s.do(s.newRequest(http.MethodPost, base+"/logs/match", logs.MatchLog{
		Date: "2024-05-04", Opponent: "FC Minato", Result: "3-1", Score: "得点2、アシスト1", Status: logs.StatusWin,
	}), http.StatusCreated, nil)
	s.do(s.newRequest(http.MethodPost, base+"/logs/match", logs.MatchLog{
		Date: "2024-05-11", Opponent: "FC Kita", Result: "0-2", Score: "得点0", Status: logs.StatusLose,
	}), http.StatusCreated, nil)
	for _, day := range []string{"2024-05-12", "2024-05-13", "2024-05-14"} {
		s.do(s.newRequest(http.MethodPost, base+"/logs/practice", logs.PracticeLog{
			Date: day, Duration: "1.5時間", Title: "drills",
		}), http.StatusCreated, nil)
	}

	var summary progress.Summary
	resp := s.do(s.newRequest(http.MethodGet, base+"/summary?now=2024-05-14", nil), http.StatusOK, &summary)
	etag := resp.Header.Get("ETag")
	s.NotEmpty(etag)

	s.Equal("2024-05", summary.Month)
	s.Equal(25, summary.SkillTotal)
	s.Equal(2, summary.TotalGoals)
	s.Equal(1, summary.TotalAssists)
	s.Equal(1, summary.Wins)
	s.Equal(1, summary.Losses)
	s.InDelta(50.0, summary.WinRate, 0.001)
	s.InDelta(4.5, summary.TotalPracticeHours, 0.001)
	s.Equal(3, summary.CurrentPracticeStreak)
	s.Equal(3, summary.LongestPracticeStreak)
	s.Require().NotNil(summary.LatestPhysical)
	s.Equal("2024-05-10", summary.LatestPhysical.Date)

	// same summary, served from the cache
	req := s.newRequest(http.MethodGet, base+"/summary?now=2024-05-14", nil)
	req.Header.Set("If-None-Match", etag)
	s.do(req, http.StatusNotModified, nil)

	// a new log drops the cached summary
	s.do(s.newRequest(http.MethodPost, base+"/logs/match", logs.MatchLog{
		Date: "2024-05-13", Opponent: "FC Nishi", Result: "1-1", Score: "得点1", Status: logs.StatusDraw,
	}), http.StatusCreated, nil)

	summary = progress.Summary{}
	resp = s.do(s.newRequest(http.MethodGet, base+"/summary?now=2024-05-14", nil), http.StatusOK, &summary)
	s.NotEqual(etag, resp.Header.Get("ETag"))
	s.Equal(1, summary.Draws)
	s.Equal(3, summary.TotalGoals)

	var monthly dashboard.Monthly
	s.do(s.newRequest(http.MethodGet, base+"/monthly/physical?field=height", nil), http.StatusOK, &monthly)
	s.Equal(logs.KindPhysical, monthly.Kind)
	s.Equal([]string{"height"}, monthly.Fields)
	s.Require().Len(monthly.Months.Months, 2)
	s.Equal("2024-04", monthly.Months.Months[0].Month)
	s.InDelta(142.0, monthly.Months.Months[1].Averages["height"], 0.001)

	s.do(s.newRequest(http.MethodGet, base+"/monthly/physical?field=shoe_size", nil), http.StatusBadRequest, nil)

	var badges []progress.BadgeResult
	s.do(s.newRequest(http.MethodGet, base+"/badges", nil), http.StatusOK, &badges)
	s.NotEmpty(badges)
	byID := map[progress.BadgeID]progress.BadgeResult{}
	for _, b := range badges {
		byID[b.ID] = b
	}
	s.False(byID[progress.BadgeGoalStreak].Achieved)
	s.False(byID[progress.BadgePracticeStreak].Achieved)
	s.False(byID[progress.BadgeSpeedRecord].Evaluable)
}

func (s *IntegrationTestSuite) TestAdvice_ServiceUnavailable() {
	player := s.addPlayer("Jiro")
	base := fmt.Sprintf("/players/%d", player.ID)

	// no physical logs yet
	s.do(s.newRequest(http.MethodGet, base+"/prediction", nil), http.StatusNotFound, nil)

	s.do(s.newRequest(http.MethodPost, base+"/logs/physical", logs.PhysicalLog{
		Date: time.Now().Format(logs.DateLayout), Height: 150, Weight: 40,
	}), http.StatusCreated, nil)

	// the configured advice service is unreachable
	s.do(s.newRequest(http.MethodGet, base+"/prediction", nil), http.StatusBadGateway, nil)
}
