package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/playerprogress/internal/telemetry/metrics"
	"github.com/2beens/playerprogress/internal/telemetry/tracing"

	"github.com/cenkalti/backoff/v4"
	"github.com/cespare/xxhash/v2"
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	EndpointPredict = "predict"
	EndpointAdvice  = "advice"

	statusCached    = "cached"
	statusTransport = "transport_error"

	megabyte = 1024 * 1024
)

const (
	userMessagePredict = "成長予測を取得できませんでした。しばらくしてから再度お試しください。"
	userMessageAdvice  = "アドバイスを取得できませんでした。しばらくしてから再度お試しください。"
)

var errUpstream = errors.New("upstream error")

type NewClientParams struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	CacheSizeMB    int
	CacheTTL       time.Duration
	MaxRetries     uint64
	RetryInterval  time.Duration
	MetricsManager *metrics.Manager
	// HTTPClient overrides the default otelhttp instrumented client
	HTTPClient *http.Client
}

// Client talks to the external advice and growth-prediction service.
// Successful responses are cached per endpoint and request body.
type Client struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	cache          *freecache.Cache
	cacheTTLSec    int
	maxRetries     uint64
	retryInterval  time.Duration
	metricsManager *metrics.Manager
}

func NewClient(params NewClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   params.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	cacheSizeMB := params.CacheSizeMB
	if cacheSizeMB <= 0 {
		cacheSizeMB = 10
	}
	retryInterval := params.RetryInterval
	if retryInterval <= 0 {
		retryInterval = 200 * time.Millisecond
	}

	return &Client{
		baseURL:        params.BaseURL,
		apiKey:         params.APIKey,
		httpClient:     httpClient,
		cache:          freecache.NewCache(cacheSizeMB * megabyte),
		cacheTTLSec:    int(params.CacheTTL.Seconds()),
		maxRetries:     params.MaxRetries,
		retryInterval:  retryInterval,
		metricsManager: params.MetricsManager,
	}
}

func (c *Client) Predict(ctx context.Context, m GrowthMetrics) (_ *Prediction, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "advice.client.predict")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var prediction Prediction
	if err := c.do(ctx, EndpointPredict, m, &prediction); err != nil {
		return nil, &ServiceError{UserMessage: userMessagePredict, Err: err}
	}
	return &prediction, nil
}

func (c *Client) Advice(ctx context.Context, req AdviceRequest) (_ *Advice, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "advice.client.advice")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var advice Advice
	if err := c.do(ctx, EndpointAdvice, req, &advice); err != nil {
		return nil, &ServiceError{UserMessage: userMessageAdvice, Err: err}
	}
	return &advice, nil
}

// do posts payload to the endpoint and decodes the answer into out. Transport errors
// and 5xx answers are retried with exponential backoff; 4xx answers are not.
func (c *Client) do(ctx context.Context, endpoint string, payload, out any) error {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("advice.endpoint", endpoint))

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", endpoint, err)
	}

	cacheKey := []byte(fmt.Sprintf("%s::%016x", endpoint, xxhash.Sum64(body)))
	if cached, err := c.cache.Get(cacheKey); err == nil {
		unmarshalErr := json.Unmarshal(cached, out)
		if unmarshalErr == nil {
			log.Tracef("advice %s: served from cache", endpoint)
			c.countRequest(endpoint, statusCached)
			return nil
		}
		log.Errorf("advice %s: unmarshal cached response: %s", endpoint, unmarshalErr)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	var respBytes []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.countRequest(endpoint, statusTransport)
			return fmt.Errorf("http client do: %w", err)
		}
		defer resp.Body.Close()
		c.countRequest(endpoint, strconv.Itoa(resp.StatusCode))

		respBytes, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("%w: status %d", errUpstream, resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(fmt.Errorf("%w: status %d: %s", errUpstream, resp.StatusCode, respBytes))
		}
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.retryInterval
	retryPolicy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, c.maxRetries), ctx)
	if err := backoff.Retry(operation, retryPolicy); err != nil {
		return err
	}

	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", endpoint, err)
	}

	if c.cacheTTLSec > 0 {
		if err := c.cache.Set(cacheKey, respBytes, c.cacheTTLSec); err != nil {
			log.Errorf("advice %s: write cache: %s", endpoint, err)
		}
	}

	return nil
}

func (c *Client) countRequest(endpoint, status string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterAdviceRequests.WithLabelValues(endpoint, status).Inc()
}
