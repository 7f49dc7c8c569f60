package usecases

import (
	"context"

	"autocrm/internal/application/ticket/dto"
	"autocrm/internal/domain/ticket"
	"autocrm/internal/shared/logger"
)

// StatsCache fronts the stats query with a short-lived cache. A miss
// returns (nil, nil).
type StatsCache interface {
	Get(ctx context.Context) (*ticket.Stats, error)
	Set(ctx context.Context, stats *ticket.Stats) error
}

type GetTicketStatsQuery struct{}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	cache      StatsCache
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo ticket.TicketRepository,
	cache StatsCache,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, _ GetTicketStatsQuery) (*dto.StatsDTO, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err != nil {
			// Cache trouble never blocks the dashboard.
			uc.logger.Warnw("stats cache read failed", "error", err)
		} else if cached != nil {
			return dto.ToStatsDTO(cached), nil
		}
	}

	stats, err := uc.ticketRepo.GetStats(ctx, ticket.TicketFilter{})
	if err != nil {
		uc.logger.Errorw("failed to compute ticket stats", "error", err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, stats); err != nil {
			uc.logger.Warnw("stats cache write failed", "error", err)
		}
	}

	return dto.ToStatsDTO(stats), nil
}
