package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"streamPulse/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache stores serialized root-cause reports with a TTL so repeated
// dashboard loads don't recompute the same analysis.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &ReportCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ReportCache) Get(ctx context.Context, key string) (*domain.RootCauseReport, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached report: %w", err)
	}

	var report domain.RootCauseReport
	if err := json.Unmarshal(raw, &report); err != nil {
		// stale or corrupt entry; treat as a miss
		return nil, nil
	}

	return &report, nil
}

func (c *ReportCache) Set(ctx context.Context, key string, report domain.RootCauseReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}

	return nil
}
