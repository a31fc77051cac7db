package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatsCache holds computed dashboard payloads in Redis so repeated
// dashboard polls don't recompute full aggregations. Entries are keyed
// by a per-survey version counter; bumping the version on submission
// orphans every cached view at once, which beats scanning for keys.
type StatsCache interface {
	// GetPayload returns the cached payload or nil on a miss.
	GetPayload(ctx context.Context, surveyID, view, variant string) ([]byte, error)
	SetPayload(ctx context.Context, surveyID, view, variant string, payload []byte) error
	// Invalidate drops every cached view of the survey.
	Invalidate(ctx context.Context, surveyID string) error
}

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a stats cache with a short TTL; dashboards
// tolerate slightly stale numbers between submissions.
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *statsCache) versionKey(surveyID string) string {
	return fmt.Sprintf("stats:survey:%s:ver", surveyID)
}

func (c *statsCache) payloadKey(surveyID, view, variant string, version int64) string {
	return fmt.Sprintf("stats:survey:%s:v%d:%s:%s", surveyID, version, view, variant)
}

func (c *statsCache) version(ctx context.Context, surveyID string) (int64, error) {
	version, err := c.client.Get(ctx, c.versionKey(surveyID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (c *statsCache) GetPayload(ctx context.Context, surveyID, view, variant string) ([]byte, error) {
	version, err := c.version(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	payload, err := c.client.Get(ctx, c.payloadKey(surveyID, view, variant, version)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *statsCache) SetPayload(ctx context.Context, surveyID, view, variant string, payload []byte) error {
	version, err := c.version(ctx, surveyID)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.payloadKey(surveyID, view, variant, version), payload, c.ttl).Err()
}

func (c *statsCache) Invalidate(ctx context.Context, surveyID string) error {
	return c.client.Incr(ctx, c.versionKey(surveyID)).Err()
}
