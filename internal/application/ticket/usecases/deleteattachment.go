package usecases

import (
	"context"

	"autocrm/internal/domain/ticket"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type DeleteAttachmentCommand struct {
	TicketID       uint
	AttachmentID   uint
	RequesterEmail string
	RequesterRole  string
}

type DeleteAttachmentResult struct {
	AttachmentID uint
}

// DeleteAttachmentUseCase removes the stored object first, then the row.
type DeleteAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	storage        ObjectStorage
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	storage ObjectStorage,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) (*DeleteAttachmentResult, error) {
	if cmd.TicketID == 0 || cmd.AttachmentID == 0 {
		return nil, errors.NewValidationError("ticket ID and attachment ID are required")
	}

	attachment, err := uc.attachmentRepo.GetByID(ctx, cmd.AttachmentID)
	if err != nil {
		return nil, err
	}
	if attachment == nil || attachment.TicketID() != cmd.TicketID {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	role := authorization.ParseUserRole(cmd.RequesterRole)
	if !t.CanBeViewedBy(cmd.RequesterEmail, string(role)) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	if err := uc.storage.Delete(ctx, attachment.StorageKey()); err != nil {
		uc.logger.Errorw("failed to delete stored object", "key", attachment.StorageKey(), "error", err)
		return nil, errors.NewInternalError("failed to delete attachment")
	}

	if err := uc.attachmentRepo.Delete(ctx, attachment.ID()); err != nil {
		uc.logger.Errorw("failed to delete attachment row", "attachment_id", attachment.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment deleted", "ticket_id", cmd.TicketID, "attachment_id", attachment.ID())

	return &DeleteAttachmentResult{AttachmentID: attachment.ID()}, nil
}
