package advice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/playerprogress/internal/logs"
	"github.com/2beens/playerprogress/internal/progress"
	"github.com/2beens/playerprogress/internal/telemetry/tracing"
	"github.com/2beens/playerprogress/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=advice_test

type physicalLogs interface {
	ListPhysical(ctx context.Context, playerID int) ([]logs.PhysicalLog, error)
}

type summaryProvider interface {
	Summary(ctx context.Context, playerID int, now time.Time) (*progress.Summary, error)
}

type adviceService interface {
	Predict(ctx context.Context, metrics GrowthMetrics) (*Prediction, error)
	Advice(ctx context.Context, req AdviceRequest) (*Advice, error)
}

type Handler struct {
	physical  physicalLogs
	summaries summaryProvider
	service   adviceService
	now       func() time.Time
}

func NewHandler(physical physicalLogs, summaries summaryProvider, service adviceService) *Handler {
	return &Handler{
		physical:  physical,
		summaries: summaries,
		service:   service,
		now:       time.Now,
	}
}

// HandlePrediction asks for a growth prediction based on the latest physical log.
func (handler *Handler) HandlePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.advice.prediction")
	defer span.End()

	playerID, err := pkg.PathInt(r, "pid")
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("player.id", playerID))

	entries, err := handler.physical.ListPhysical(ctx, playerID)
	if err != nil {
		log.Errorf("failed to list physical logs for player %d: %s", playerID, err)
		http.Error(w, "error, failed to list physical logs", http.StatusInternalServerError)
		return
	}
	latest, ok := progress.Latest(entries)
	if !ok {
		http.Error(w, "no physical logs to predict from", http.StatusNotFound)
		return
	}

	prediction, err := handler.service.Predict(ctx, GrowthMetricsFrom(latest))
	if err != nil {
		writeServiceError(w, playerID, err)
		return
	}

	if err := pkg.WriteJSON(w, prediction, http.StatusOK); err != nil {
		log.Errorf("failed to marshal prediction: %s", err)
	}
}

// HandleAdvice asks for training advice based on the player's current summary.
func (handler *Handler) HandleAdvice(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.advice.advice")
	defer span.End()

	playerID, err := pkg.PathInt(r, "pid")
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("player.id", playerID))

	summary, err := handler.summaries.Summary(ctx, playerID, handler.now())
	if err != nil {
		log.Errorf("failed to build summary for player %d: %s", playerID, err)
		http.Error(w, "error, failed to build summary", http.StatusInternalServerError)
		return
	}

	advice, err := handler.service.Advice(ctx, AdviceRequestFrom(*summary))
	if err != nil {
		writeServiceError(w, playerID, err)
		return
	}

	if err := pkg.WriteJSON(w, advice, http.StatusOK); err != nil {
		log.Errorf("failed to marshal advice: %s", err)
	}
}

func writeServiceError(w http.ResponseWriter, playerID int, err error) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		log.Warnf("advice service failed for player %d: %s", playerID, serviceErr.Err)
		pkg.WriteResponse(w, pkg.ContentType.Text, serviceErr.UserMessage, http.StatusBadGateway)
		return
	}
	log.Errorf("advice request for player %d: %s", playerID, err)
	http.Error(w, "error, advice request failed", http.StatusInternalServerError)
}
