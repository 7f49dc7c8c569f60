package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocrm/internal/domain/ticket"
)

func sampleStats() *ticket.Stats {
	return &ticket.Stats{
		Total:             12,
		ResolvedCount:     5,
		AvgResolutionDays: 2.4,
		StatusDistribution: map[string]int64{
			"open":     4,
			"resolved": 5,
		},
		PriorityDistribution: map[string]int64{
			"high": 3,
		},
		AgeBuckets: ticket.AgeBuckets{UnderOneDay: 2, UnderOneWeek: 6, UnderOneMonth: 3, OverOneMonth: 1},
	}
}

func TestGetTicketStatsUseCase_Execute_CacheHit(t *testing.T) {
	repoCalled := false
	mockRepo := &mockTicketRepository{
		GetStatsFunc: func(ctx context.Context, filter ticket.TicketFilter) (*ticket.Stats, error) {
			repoCalled = true
			return nil, nil
		},
	}
	cache := &mockStatsCache{
		GetFunc: func(ctx context.Context) (*ticket.Stats, error) {
			return sampleStats(), nil
		},
	}

	useCase := NewGetTicketStatsUseCase(mockRepo, cache, mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketStatsQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(12), result.Total)
	assert.False(t, repoCalled)
}

func TestGetTicketStatsUseCase_Execute_CacheMissFillsCache(t *testing.T) {
	var cachedStats *ticket.Stats
	mockRepo := &mockTicketRepository{
		GetStatsFunc: func(ctx context.Context, filter ticket.TicketFilter) (*ticket.Stats, error) {
			return sampleStats(), nil
		},
	}
	cache := &mockStatsCache{
		SetFunc: func(ctx context.Context, stats *ticket.Stats) error {
			cachedStats = stats
			return nil
		},
	}

	useCase := NewGetTicketStatsUseCase(mockRepo, cache, mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketStatsQuery{})

	require.NoError(t, err)
	assert.Equal(t, 2.4, result.AvgResolutionDays)
	assert.Equal(t, int64(6), result.AgeBuckets.UnderOneWeek)
	require.NotNil(t, cachedStats)
}

func TestGetTicketStatsUseCase_Execute_CacheErrorsIgnored(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetStatsFunc: func(ctx context.Context, filter ticket.TicketFilter) (*ticket.Stats, error) {
			return sampleStats(), nil
		},
	}
	cache := &mockStatsCache{
		GetFunc: func(ctx context.Context) (*ticket.Stats, error) {
			return nil, errors.New("redis down")
		},
		SetFunc: func(ctx context.Context, stats *ticket.Stats) error {
			return errors.New("redis down")
		},
	}

	useCase := NewGetTicketStatsUseCase(mockRepo, cache, mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketStatsQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(12), result.Total)
}
