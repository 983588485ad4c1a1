package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/playerprogress/internal/progress"
	"github.com/2beens/playerprogress/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const summaryKeyPrefix = "summary:"

var ErrCacheMiss = errors.New("summary cache miss")

// SummaryCache keeps built summaries in redis, one key per player and day, each with its
// own TTL. A per-player set lists the cached days so a write to the player's logs can
// drop all of them.
type SummaryCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSummaryCache(redisClient *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func summaryKey(playerID int, day string) string {
	return summaryKeyPrefix + strconv.Itoa(playerID) + ":" + day
}

func summaryDaysKey(playerID int) string {
	return summaryKeyPrefix + strconv.Itoa(playerID) + ":days"
}

func (c *SummaryCache) Get(ctx context.Context, playerID int, day string) (_ *progress.Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.summary.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID), attribute.String("day", day))

	raw, err := c.redisClient.Get(ctx, summaryKey(playerID, day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}

	var s progress.Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("unmarshal cached summary: %w", err)
	}
	return &s, nil
}

func (c *SummaryCache) Set(ctx context.Context, playerID int, day string, s progress.Summary) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.summary.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID), attribute.String("day", day))

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	if err := c.redisClient.Set(ctx, summaryKey(playerID, day), string(raw), c.ttl).Err(); err != nil {
		return fmt.Errorf("set: %w", err)
	}

	daysKey := summaryDaysKey(playerID)
	if err := c.redisClient.SAdd(ctx, daysKey, day).Err(); err != nil {
		return fmt.Errorf("sadd: %w", err)
	}
	// the index never outlives the newest summary it lists
	if err := c.redisClient.Expire(ctx, daysKey, c.ttl).Err(); err != nil {
		return fmt.Errorf("expire: %w", err)
	}
	return nil
}

// Invalidate drops every cached summary of the player.
func (c *SummaryCache) Invalidate(ctx context.Context, playerID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.summary.invalidate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID))

	daysKey := summaryDaysKey(playerID)
	days, err := c.redisClient.SMembers(ctx, daysKey).Result()
	if err != nil {
		return fmt.Errorf("smembers: %w", err)
	}

	keys := make([]string, 0, len(days)+1)
	for _, day := range days {
		keys = append(keys, summaryKey(playerID, day))
	}
	keys = append(keys, daysKey)

	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("del: %w", err)
	}
	return nil
}
