package usecases

import (
	"context"

	"autocrm/internal/application/ticket/dto"
	"autocrm/internal/domain/ticket"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type ListResponsesQuery struct {
	TicketID       uint
	RequesterEmail string
	RequesterRole  string
}

type ListResponsesResult struct {
	Responses []dto.ResponseDTO
}

type ListResponsesUseCase struct {
	ticketRepo   ticket.TicketRepository
	responseRepo ticket.ResponseRepository
	logger       logger.Interface
}

func NewListResponsesUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	logger logger.Interface,
) *ListResponsesUseCase {
	return &ListResponsesUseCase{
		ticketRepo:   ticketRepo,
		responseRepo: responseRepo,
		logger:       logger,
	}
}

func (uc *ListResponsesUseCase) Execute(ctx context.Context, query ListResponsesQuery) (*ListResponsesResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
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
		uc.logger.Errorw("failed to list responses", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	items := make([]dto.ResponseDTO, 0, len(responses))
	for _, r := range responses {
		items = append(items, dto.ToResponseDTO(r))
	}

	return &ListResponsesResult{Responses: items}, nil
}
