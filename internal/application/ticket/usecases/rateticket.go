package usecases

import (
	"context"
	"strings"
	"time"

	"autocrm/internal/domain/ticket"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type RateTicketCommand struct {
	TicketID       uint
	Rating         int
	Comment        string
	RequesterEmail string
}

type RateTicketResult struct {
	TicketID uint
	Rating   int
	RatedAt  time.Time
}

type RateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewRateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *RateTicketUseCase {
	return &RateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *RateTicketUseCase) Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, errors.NewValidationError("rating must be between 1 and 5")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for rating", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// Only the ticket's own customer may rate it.
	if !strings.EqualFold(t.CustomerEmail(), cmd.RequesterEmail) {
		return nil, errors.NewForbiddenError("only the ticket customer can rate it")
	}

	if t.IsRated() {
		return nil, errors.NewConflictError("ticket has already been rated")
	}

	if err := t.Rate(cmd.Rating, cmd.Comment); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist ticket rating", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket rated", "ticket_id", t.ID(), "rating", cmd.Rating)

	return &RateTicketResult{
		TicketID: t.ID(),
		Rating:   cmd.Rating,
		RatedAt:  *t.RatedAt(),
	}, nil
}
