package usecases

import (
	"context"

	"autocrm/internal/domain/ticket"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

// TransactionManager runs a function inside a single database transaction;
// any error rolls the whole unit back.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketResult struct {
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      TransactionManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// The delete cascades over responses and attachments; one transaction
	// keeps a mid-cascade failure from leaving orphaned rows.
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)

	return &DeleteTicketResult{TicketID: cmd.TicketID}, nil
}
