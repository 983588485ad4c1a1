package logs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/playerprogress/internal/telemetry/tracing"
	"github.com/2beens/playerprogress/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=logs_test

type logsRepo interface {
	AddPlayer(ctx context.Context, name string) (*Player, error)
	AddPhysical(ctx context.Context, l PhysicalLog) (*PhysicalLog, error)
	AddSkill(ctx context.Context, l SkillLog) (*SkillLog, error)
	AddMatch(ctx context.Context, l MatchLog) (*MatchLog, error)
	AddPractice(ctx context.Context, l PracticeLog) (*PracticeLog, error)
	ListPhysical(ctx context.Context, playerID int) ([]PhysicalLog, error)
	ListSkill(ctx context.Context, playerID int) ([]SkillLog, error)
	ListMatch(ctx context.Context, playerID int) ([]MatchLog, error)
	ListPractice(ctx context.Context, playerID int) ([]PracticeLog, error)
	Delete(ctx context.Context, playerID int, kind Kind, id int) error
}

// summaryInvalidator drops derived data cached for a player whose logs changed.
type summaryInvalidator interface {
	Invalidate(ctx context.Context, playerID int) error
}

// free text is shown as plain text on the dashboard, so all markup is dropped
var textPolicy = bluemonday.StrictPolicy()

type DeleteResponse struct {
	DeletedID int  `json:"deletedId"`
	Kind      Kind `json:"kind"`
}

type Handler struct {
	repo        logsRepo
	invalidator summaryInvalidator
	now         func() time.Time
}

func NewHandler(repo logsRepo, invalidator summaryInvalidator) *Handler {
	return &Handler{
		repo:        repo,
		invalidator: invalidator,
		now:         time.Now,
	}
}

func (handler *Handler) HandleAddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.add_player")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var player Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		log.Tracef("add player, unmarshal json params: %s", err)
		http.Error(w, "add player failed", http.StatusBadRequest)
		return
	}
	player.Name = sanitize(player.Name)
	if player.Name == "" {
		http.Error(w, "error, player name empty", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddPlayer(ctx, player.Name)
	if err != nil {
		log.Errorf("failed to add player [%s]: %s", player.Name, err)
		http.Error(w, "error, failed to add player", http.StatusInternalServerError)
		return
	}

	if err := pkg.WriteJSON(w, added, http.StatusCreated); err != nil {
		log.Errorf("failed to marshal player: %s", err)
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.add")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	playerID, kind, ok := playerAndKind(w, r)
	if !ok {
		return
	}

	today := handler.now().Format(DateLayout)
	var (
		added any
		err   error
	)
	switch kind {
	case KindPhysical:
		var l PhysicalLog
		if !decode(w, r, &l) {
			return
		}
		l.PlayerID = playerID
		if l.Date, err = normalizeDate(l.Date, today); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if l.Height < 0 || l.Weight < 0 {
			http.Error(w, "error, height and weight cannot be negative", http.StatusBadRequest)
			return
		}
		added, err = handler.repo.AddPhysical(ctx, l)
	case KindSkill:
		var l SkillLog
		if !decode(w, r, &l) {
			return
		}
		l.PlayerID = playerID
		if l.Date, err = normalizeDate(l.Date, today); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		l.Comment = sanitize(l.Comment)
		added, err = handler.repo.AddSkill(ctx, l)
	case KindMatch:
		var l MatchLog
		if !decode(w, r, &l) {
			return
		}
		l.PlayerID = playerID
		if l.Date, err = normalizeDate(l.Date, today); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !l.Status.IsValid() {
			http.Error(w, "error, status must be one of: win, draw, lose", http.StatusBadRequest)
			return
		}
		l.Opponent = sanitize(l.Opponent)
		l.Result = sanitize(l.Result)
		l.Note = sanitize(l.Note)
		added, err = handler.repo.AddMatch(ctx, l)
	case KindPractice:
		var l PracticeLog
		if !decode(w, r, &l) {
			return
		}
		l.PlayerID = playerID
		if l.Date, err = normalizeDate(l.Date, today); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		l.Title = sanitize(l.Title)
		l.Description = sanitize(l.Description)
		added, err = handler.repo.AddPractice(ctx, l)
	}

	if errors.Is(err, ErrPlayerNotFound) {
		http.Error(w, "player not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, ErrInvalidEntry) {
		http.Error(w, "error, invalid log entry", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to add %s log for player %d: %s", kind, playerID, err)
		http.Error(w, "error, failed to add log entry", http.StatusInternalServerError)
		return
	}

	log.Debugf("new %s log added for player %d", kind, playerID)
	handler.invalidate(ctx, playerID)
	if err := pkg.WriteJSON(w, added, http.StatusCreated); err != nil {
		log.Errorf("failed to marshal %s log: %s", kind, err)
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.list")
	defer span.End()

	playerID, kind, ok := playerAndKind(w, r)
	if !ok {
		return
	}

	var (
		entries any
		err     error
	)
	switch kind {
	case KindPhysical:
		entries, err = nonNil(handler.repo.ListPhysical(ctx, playerID))
	case KindSkill:
		entries, err = nonNil(handler.repo.ListSkill(ctx, playerID))
	case KindMatch:
		entries, err = nonNil(handler.repo.ListMatch(ctx, playerID))
	case KindPractice:
		entries, err = nonNil(handler.repo.ListPractice(ctx, playerID))
	}
	if err != nil {
		log.Errorf("failed to list %s logs for player %d: %s", kind, playerID, err)
		http.Error(w, "error, failed to list log entries", http.StatusInternalServerError)
		return
	}

	if err := pkg.WriteJSON(w, entries, http.StatusOK); err != nil {
		log.Errorf("failed to marshal %s logs: %s", kind, err)
	}
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.delete")
	defer span.End()

	playerID, kind, ok := playerAndKind(w, r)
	if !ok {
		return
	}
	id, err := pkg.PathInt(r, "id")
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, playerID, kind, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "log entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete %s log %d: %s", kind, id, err)
		http.Error(w, "error, failed to delete log entry", http.StatusInternalServerError)
		return
	}

	handler.invalidate(ctx, playerID)
	if err := pkg.WriteJSON(w, DeleteResponse{DeletedID: id, Kind: kind}, http.StatusOK); err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
	}
}

// invalidate only logs failures; cached summaries also expire with their TTL.
func (handler *Handler) invalidate(ctx context.Context, playerID int) {
	if handler.invalidator == nil {
		return
	}
	if err := handler.invalidator.Invalidate(ctx, playerID); err != nil {
		log.Warnf("failed to invalidate cached summaries of player %d: %s", playerID, err)
	}
}

func playerAndKind(w http.ResponseWriter, r *http.Request) (int, Kind, bool) {
	playerID, err := pkg.PathInt(r, "pid")
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return 0, "", false
	}
	kind, err := ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return 0, "", false
	}
	return playerID, kind, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("add log entry, unmarshal json params: %s", err)
		http.Error(w, "add log entry failed", http.StatusBadRequest)
		return false
	}
	return true
}

// normalizeDate defaults an empty date to today; anything else must be a valid YYYY-MM-DD.
func normalizeDate(date, today string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return today, nil
	}
	if err := ValidateDate(date); err != nil {
		return "", err
	}
	return date, nil
}

func sanitize(text string) string {
	return strings.TrimSpace(textPolicy.Sanitize(text))
}

// nonNil makes an empty list marshal as [] instead of null.
func nonNil[E any](entries []E, err error) ([]E, error) {
	if entries == nil {
		entries = []E{}
	}
	return entries, err
}
