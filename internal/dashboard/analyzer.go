package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/playerprogress/internal/logs"
	"github.com/2beens/playerprogress/internal/progress"
	"github.com/2beens/playerprogress/internal/telemetry/metrics"
	"github.com/2beens/playerprogress/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=dashboard_test

type logsLoader interface {
	ListPhysical(ctx context.Context, playerID int) ([]logs.PhysicalLog, error)
	ListSkill(ctx context.Context, playerID int) ([]logs.SkillLog, error)
	ListMatch(ctx context.Context, playerID int) ([]logs.MatchLog, error)
	ListPractice(ctx context.Context, playerID int) ([]logs.PracticeLog, error)
}

type summaryCache interface {
	Get(ctx context.Context, playerID int, day string) (*progress.Summary, error)
	Set(ctx context.Context, playerID int, day string, s progress.Summary) error
}

type Monthly struct {
	Kind   logs.Kind        `json:"kind"`
	Fields []string         `json:"fields"`
	Months progress.Buckets `json:"buckets"`
}

// Analyzer loads a player's logs and runs them through the progress engine.
type Analyzer struct {
	repo           logsLoader
	cache          summaryCache
	metricsManager *metrics.Manager
	loadTimeout    time.Duration
}

func NewAnalyzer(
	repo logsLoader,
	cache summaryCache,
	metricsManager *metrics.Manager,
	loadTimeout time.Duration,
) *Analyzer {
	return &Analyzer{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
		loadTimeout:    loadTimeout,
	}
}

// Load fetches all four log kinds of the player concurrently.
func (a *Analyzer) Load(ctx context.Context, playerID int) (_ progress.Input, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID))

	if a.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.loadTimeout)
		defer cancel()
	}

	var in progress.Input
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.Physical, err = a.repo.ListPhysical(gCtx, playerID)
		return wrapLoadErr(logs.KindPhysical, err)
	})
	g.Go(func() (err error) {
		in.Skill, err = a.repo.ListSkill(gCtx, playerID)
		return wrapLoadErr(logs.KindSkill, err)
	})
	g.Go(func() (err error) {
		in.Match, err = a.repo.ListMatch(gCtx, playerID)
		return wrapLoadErr(logs.KindMatch, err)
	})
	g.Go(func() (err error) {
		in.Practice, err = a.repo.ListPractice(gCtx, playerID)
		return wrapLoadErr(logs.KindPractice, err)
	})
	if err := g.Wait(); err != nil {
		return progress.Input{}, err
	}

	return in, nil
}

func wrapLoadErr(kind logs.Kind, err error) error {
	if err != nil {
		return fmt.Errorf("load %s logs: %w", kind, err)
	}
	return nil
}

// Summary returns the dashboard summary as of now, served from the cache when a summary
// for the same player and day was already built.
func (a *Analyzer) Summary(ctx context.Context, playerID int, now time.Time) (_ *progress.Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID))

	day := now.Format(logs.DateLayout)
	cached, err := a.cache.Get(ctx, playerID, day)
	switch {
	case err == nil:
		a.metricsManager.CounterSummaryCache.WithLabelValues(metrics.CacheHit).Inc()
		return cached, nil
	case errors.Is(err, ErrCacheMiss):
		a.metricsManager.CounterSummaryCache.WithLabelValues(metrics.CacheMiss).Inc()
	default:
		a.metricsManager.CounterSummaryCache.WithLabelValues(metrics.CacheErr).Inc()
		log.Warnf("summary cache get for player %d: %s", playerID, err)
	}

	in, err := a.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	summary := progress.BuildSummary(in, now)
	a.metricsManager.HistogramSummaryDuration.Observe(time.Since(start).Seconds())
	a.reportDiagnostics(summary.Diagnostics)

	if err := a.cache.Set(ctx, playerID, day, summary); err != nil {
		a.metricsManager.CounterSummaryCache.WithLabelValues(metrics.CacheErr).Inc()
		log.Warnf("summary cache set for player %d: %s", playerID, err)
	}

	return &summary, nil
}

func (a *Analyzer) reportDiagnostics(d progress.Diagnostics) {
	for kind, n := range d.SkippedDates {
		if n > 0 {
			a.metricsManager.CounterSkippedLogEntries.WithLabelValues(string(kind)).Add(float64(n))
		}
	}
	for kind, n := range d.ZeroedMetrics {
		if n > 0 {
			a.metricsManager.CounterZeroedMetrics.WithLabelValues(string(kind)).Add(float64(n))
		}
	}
}

// Monthly groups the player's logs of one kind into calendar months.
// No fields means all fields of the kind.
func (a *Analyzer) Monthly(ctx context.Context, playerID int, kind logs.Kind, fields []string) (_ *Monthly, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.monthly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID), attribute.String("kind", string(kind)))

	fields, err = progress.ResolveFields(kind, fields)
	if err != nil {
		return nil, err
	}

	var in progress.Input
	switch kind {
	case logs.KindPhysical:
		in.Physical, err = a.repo.ListPhysical(ctx, playerID)
	case logs.KindSkill:
		in.Skill, err = a.repo.ListSkill(ctx, playerID)
	case logs.KindMatch:
		in.Match, err = a.repo.ListMatch(ctx, playerID)
	case logs.KindPractice:
		in.Practice, err = a.repo.ListPractice(ctx, playerID)
	}
	if err != nil {
		return nil, wrapLoadErr(kind, err)
	}

	buckets := progress.MonthlyOf(in, kind, fields)
	if buckets.Skipped > 0 {
		a.metricsManager.CounterSkippedLogEntries.WithLabelValues(string(kind)).Add(float64(buckets.Skipped))
	}

	return &Monthly{
		Kind:   kind,
		Fields: fields,
		Months: buckets,
	}, nil
}

// Badges evaluates the default badge catalog against the player's history.
func (a *Analyzer) Badges(ctx context.Context, playerID int) (_ []progress.BadgeResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.badges")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID))

	in, err := a.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	results := progress.Evaluate(progress.DefaultCatalog(), progress.Context{
		PracticeLogs: in.Practice,
		MatchLogs:    in.Match,
		SkillLogs:    in.Skill,
	})
	for _, r := range results {
		if r.Achieved {
			a.metricsManager.CounterBadgesAchieved.WithLabelValues(string(r.ID)).Inc()
		}
	}

	return results, nil
}
