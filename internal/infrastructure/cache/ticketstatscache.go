package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"autocrm/internal/domain/ticket"
)

const (
	// ticketStatsKey holds the serialized unfiltered dashboard aggregate.
	ticketStatsKey = "ticket_stats:dashboard"

	defaultStatsTTL = time.Minute
)

// TicketStatsCache keeps the dashboard aggregate in Redis so repeated stats
// requests skip the grouped queries. It implements the application's
// StatsCache; a miss is reported as (nil, nil).
type TicketStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTicketStatsCache(client *redis.Client, ttl time.Duration) *TicketStatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &TicketStatsCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *TicketStatsCache) Get(ctx context.Context) (*ticket.Stats, error) {
	payload, err := c.client.Get(ctx, ticketStatsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached ticket stats: %w", err)
	}

	var stats ticket.Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode cached ticket stats: %w", err)
	}

	return &stats, nil
}

func (c *TicketStatsCache) Set(ctx context.Context, stats *ticket.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode ticket stats: %w", err)
	}

	if err := c.client.Set(ctx, ticketStatsKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache ticket stats: %w", err)
	}

	return nil
}
