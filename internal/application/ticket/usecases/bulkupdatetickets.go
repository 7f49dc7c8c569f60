package usecases

import (
	"context"
	"time"

	"autocrm/internal/domain/ticket"
	vo "autocrm/internal/domain/ticket/valueobjects"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

// BulkUpdateTicketsCommand changes one field across the selected tickets.
// Exactly one of Status or Priority must be set; the repository applies the
// change in a single UPDATE so the batch is all-or-nothing.
type BulkUpdateTicketsCommand struct {
	TicketIDs []uint
	Status    *string
	Priority  *string
	ActorID   uint
}

type BulkUpdateTicketsResult struct {
	UpdatedCount int
}

type BulkUpdateTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewBulkUpdateTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *BulkUpdateTicketsUseCase {
	return &BulkUpdateTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *BulkUpdateTicketsUseCase) Execute(ctx context.Context, cmd BulkUpdateTicketsCommand) (*BulkUpdateTicketsResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	if cmd.Status != nil {
		status := vo.TicketStatus(*cmd.Status)

		var resolvedAt *time.Time
		if status.IsResolved() {
			now := time.Now().UTC()
			resolvedAt = &now
		}

		if err := uc.ticketRepo.BulkUpdateStatus(ctx, cmd.TicketIDs, status, resolvedAt); err != nil {
			uc.logger.Errorw("bulk status update failed", "ticket_ids", cmd.TicketIDs, "error", err)
			return nil, err
		}
	} else {
		priority := vo.Priority(*cmd.Priority)
		if err := uc.ticketRepo.BulkUpdatePriority(ctx, cmd.TicketIDs, priority); err != nil {
			uc.logger.Errorw("bulk priority update failed", "ticket_ids", cmd.TicketIDs, "error", err)
			return nil, err
		}
	}

	uc.logger.Infow("bulk ticket update applied", "count", len(cmd.TicketIDs), "actor_id", cmd.ActorID)

	return &BulkUpdateTicketsResult{UpdatedCount: len(cmd.TicketIDs)}, nil
}

func (uc *BulkUpdateTicketsUseCase) validateCommand(cmd BulkUpdateTicketsCommand) error {
	if len(cmd.TicketIDs) == 0 {
		return errors.NewValidationError("at least one ticket ID is required")
	}

	if (cmd.Status == nil) == (cmd.Priority == nil) {
		return errors.NewValidationError("exactly one of status or priority must be provided")
	}

	if cmd.Status != nil {
		status := vo.TicketStatus(*cmd.Status)
		if !status.IsValid() {
			return errors.NewValidationError("invalid status")
		}
		// closed stays internal; bulk actions cannot move tickets there.
		if status.IsClosed() {
			return errors.NewValidationError("closed status cannot be set")
		}
	}

	if cmd.Priority != nil {
		if !vo.Priority(*cmd.Priority).IsValid() {
			return errors.NewValidationError("invalid priority")
		}
	}

	return nil
}
