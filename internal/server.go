package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/playerprogress/internal/advice"
	"github.com/2beens/playerprogress/internal/config"
	"github.com/2beens/playerprogress/internal/dashboard"
	"github.com/2beens/playerprogress/internal/db"
	"github.com/2beens/playerprogress/internal/logs"
	"github.com/2beens/playerprogress/internal/middleware"
	"github.com/2beens/playerprogress/internal/telemetry/metrics"
	"github.com/2beens/playerprogress/internal/telemetry/tracing"
	"github.com/2beens/playerprogress/pkg"
)

const maxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	apiToken          string

	config       *config.Config
	dbPool       *pgxpool.Pool
	redisClient  *redis.Client
	summaryCache *dashboard.SummaryCache
	adviceClient *advice.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config  *config.Config
	Secrets *config.Secrets
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg, secrets := params.Config, params.Secrets

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, secrets.OtelServiceName)
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, dbPoolParams(cfg, secrets.HoneycombEnabled))
	if err != nil {
		otelShutdown()
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("progress", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})
	if secrets.HoneycombEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	return &Server{
		apiToken:     secrets.APIToken,
		config:       cfg,
		dbPool:       dbPool,
		redisClient:  rdb,
		summaryCache: dashboard.NewSummaryCache(rdb, cfg.SummaryCacheTTL),
		adviceClient: advice.NewClient(advice.NewClientParams{
			BaseURL:        cfg.AdviceBaseURL,
			APIKey:         secrets.AdviceAPIKey,
			Timeout:        cfg.AdviceTimeout,
			CacheSizeMB:    cfg.AdviceCacheSizeMB,
			CacheTTL:       cfg.AdviceCacheTTL,
			MaxRetries:     2,
			MetricsManager: metricsManager,
		}),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("progress-router"))

	r.HandleFunc("/", handleRoot).Methods("GET").Name("root")
	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")

	logsRepo := logs.NewRepo(s.dbPool)
	logsHandler := logs.NewHandler(logsRepo, s.summaryCache)
	r.HandleFunc("/players", logsHandler.HandleAddPlayer).Methods("POST", "OPTIONS").Name("new-player")
	r.HandleFunc("/players/{pid}/logs/{kind}", logsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-log")
	r.HandleFunc("/players/{pid}/logs/{kind}", logsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-logs")
	r.HandleFunc("/players/{pid}/logs/{kind}/{id}", logsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-log")

	analyzer := dashboard.NewAnalyzer(logsRepo, s.summaryCache, s.metricsManager, s.config.LoadTimeout)
	dashboardHandler := dashboard.NewHandler(analyzer)
	r.HandleFunc("/players/{pid}/summary", dashboardHandler.HandleSummary).Methods("GET", "OPTIONS").Name("summary")
	r.HandleFunc("/players/{pid}/monthly/{kind}", dashboardHandler.HandleMonthly).Methods("GET", "OPTIONS").Name("monthly")
	r.HandleFunc("/players/{pid}/badges", dashboardHandler.HandleBadges).Methods("GET", "OPTIONS").Name("badges")

	// the advice service is paid per call
	rateLimit := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		s.metricsManager,
		"advice",
		s.config.AdviceRateLimitPerMin,
	)
	adviceHandler := advice.NewHandler(logsRepo, analyzer, s.adviceClient)
	r.Handle("/players/{pid}/prediction", rateLimit(http.HandlerFunc(adviceHandler.HandlePrediction))).Methods("GET", "OPTIONS").Name("prediction")
	r.Handle("/players/{pid}/advice", rateLimit(http.HandlerFunc(adviceHandler.HandleAdvice))).Methods("GET", "OPTIONS").Name("advice")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(middleware.NewAuthMiddlewareHandler(s.apiToken).AuthCheck())
	r.Use(middleware.LimitAndDrainRequest(maxRequestBodyBytes))

	return r
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "player progress tracker")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var err error
	if pingErr := s.dbPool.Ping(ctx); pingErr != nil {
		err = multierr.Append(err, fmt.Errorf("postgres: %w", pingErr))
	}
	if pingErr := s.redisClient.Ping(ctx).Err(); pingErr != nil {
		err = multierr.Append(err, fmt.Errorf("redis: %w", pingErr))
	}
	if err != nil {
		log.Errorf("health check: %s", err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "unhealthy", http.StatusServiceUnavailable)
		return
	}
	pkg.WriteTextResponseOK(w, "ok")
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before closing what they depend on
	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	for _, e := range multierr.Errors(err) {
		log.Errorf(" >>> shutdown: %s", e)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}

func dbPoolParams(cfg *config.Config, tracingEnabled bool) db.NewDBPoolParams {
	return db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		MaxConns:       cfg.PostgresMaxConns,
		TracingEnabled: tracingEnabled,
	}
}
