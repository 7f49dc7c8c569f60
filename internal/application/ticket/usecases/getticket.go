package usecases

import (
	"context"

	"autocrm/internal/application/ticket/dto"
	"autocrm/internal/domain/ticket"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID          uint
	RequesterEmail    string
	RequesterRole     string
	AttachmentBaseURL string
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	responseRepo   ticket.ResponseRepository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		responseRepo:   responseRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	role := authorization.ParseUserRole(query.RequesterRole)
	if !t.CanBeViewedBy(query.RequesterEmail, string(role)) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	responses, err := uc.responseRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket responses", "ticket_id", t.ID(), "error", err)
		return nil, err
	}
	t.SetResponses(responses)

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket attachments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}
	t.SetAttachments(attachments)

	return dto.ToTicketDTO(t, role.CanViewAllTickets(), query.AttachmentBaseURL), nil
}
