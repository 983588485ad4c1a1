package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/playerprogress/internal/logs"
	"github.com/2beens/playerprogress/internal/progress"
	"github.com/2beens/playerprogress/internal/telemetry/tracing"
	"github.com/2beens/playerprogress/pkg"

	"github.com/cespare/xxhash/v2"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type progressAnalyzer interface {
	Summary(ctx context.Context, playerID int, now time.Time) (*progress.Summary, error)
	Monthly(ctx context.Context, playerID int, kind logs.Kind, fields []string) (*Monthly, error)
	Badges(ctx context.Context, playerID int) ([]progress.BadgeResult, error)
}

type Handler struct {
	analyzer progressAnalyzer
	now      func() time.Time
}

func NewHandler(analyzer progressAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
		now:      time.Now,
	}
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	playerID, err := pkg.PathInt(r, "pid")
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	now := handler.now()
	if nowParam := r.URL.Query().Get("now"); nowParam != "" {
		now, err = time.ParseInLocation(logs.DateLayout, nowParam, now.Location())
		if err != nil {
			http.Error(w, "error, now must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	summary, err := handler.analyzer.Summary(ctx, playerID, now)
	if err != nil {
		log.Errorf("failed to build summary for player %d: %s", playerID, err)
		http.Error(w, "error, failed to build summary", http.StatusInternalServerError)
		return
	}

	if err := writeWithETag(w, r, summary); err != nil {
		log.Errorf("failed to marshal summary: %s", err)
	}
}

func (handler *Handler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.monthly")
	defer span.End()

	playerID, err := pkg.PathInt(r, "pid")
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}
	kind, err := logs.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	monthly, err := handler.analyzer.Monthly(ctx, playerID, kind, r.URL.Query()["field"])
	if errors.Is(err, progress.ErrUnknownField) {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to build monthly %s aggregates for player %d: %s", kind, playerID, err)
		http.Error(w, "error, failed to build monthly aggregates", http.StatusInternalServerError)
		return
	}

	if err := writeWithETag(w, r, monthly); err != nil {
		log.Errorf("failed to marshal monthly aggregates: %s", err)
	}
}

func (handler *Handler) HandleBadges(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.badges")
	defer span.End()

	playerID, err := pkg.PathInt(r, "pid")
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	badges, err := handler.analyzer.Badges(ctx, playerID)
	if err != nil {
		log.Errorf("failed to evaluate badges for player %d: %s", playerID, err)
		http.Error(w, "error, failed to evaluate badges", http.StatusInternalServerError)
		return
	}

	if err := writeWithETag(w, r, badges); err != nil {
		log.Errorf("failed to marshal badges: %s", err)
	}
}

// writeWithETag writes v as JSON tagged with the xxhash of the body,
// or only 304 when the client already holds that body.
func writeWithETag(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return err
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, body, http.StatusOK)
	return nil
}
