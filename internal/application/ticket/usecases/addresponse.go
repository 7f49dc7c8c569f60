package usecases

import (
	"context"
	"time"

	"autocrm/internal/domain/ticket"
	vo "autocrm/internal/domain/ticket/valueobjects"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
	"autocrm/internal/shared/services/richtext"
)

type AddResponseCommand struct {
	TicketID     uint
	Content      string
	AuthorID     uint
	AuthorEmail  string
	AuthorRole   string
	ResponseType string
}

type AddResponseResult struct {
	ResponseID uint
	TicketID   uint
	CreatedAt  time.Time
}

type AddResponseUseCase struct {
	ticketRepo   ticket.TicketRepository
	responseRepo ticket.ResponseRepository
	richtext     richtext.Service
	logger       logger.Interface
}

func NewAddResponseUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	richtextSvc richtext.Service,
	logger logger.Interface,
) *AddResponseUseCase {
	return &AddResponseUseCase{
		ticketRepo:   ticketRepo,
		responseRepo: responseRepo,
		richtext:     richtextSvc,
		logger:       logger,
	}
}

func (uc *AddResponseUseCase) Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for response", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	role := authorization.ParseUserRole(cmd.AuthorRole)
	if !t.CanBeViewedBy(cmd.AuthorEmail, string(role)) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	responseType := vo.ResponseType(cmd.ResponseType)
	if cmd.ResponseType == "" {
		responseType = vo.ResponseTypeManual
	}

	content := uc.richtext.Sanitize(cmd.Content)

	response, err := ticket.NewResponse(t.ID(), content, cmd.AuthorID, cmd.AuthorEmail, responseType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.responseRepo.Save(ctx, response); err != nil {
		uc.logger.Errorw("failed to save response", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("response added", "ticket_id", t.ID(), "response_id", response.ID(), "type", responseType.String())

	return &AddResponseResult{
		ResponseID: response.ID(),
		TicketID:   t.ID(),
		CreatedAt:  response.CreatedAt(),
	}, nil
}

func (uc *AddResponseUseCase) validateCommand(cmd AddResponseCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	if cmd.AuthorID == 0 {
		return errors.NewValidationError("author ID is required")
	}
	if cmd.ResponseType != "" && !vo.ResponseType(cmd.ResponseType).IsValid() {
		return errors.NewValidationError("invalid response type")
	}
	return nil
}
