package usecases

import (
	"context"
	"time"

	"autocrm/internal/domain/ticket"
	vo "autocrm/internal/domain/ticket/valueobjects"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
	"autocrm/internal/shared/services/richtext"
)

type CreateTicketCommand struct {
	Title         string
	Description   string
	Priority      string
	CustomerEmail string
	Tags          []string
	CustomFields  map[string]interface{}
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	richtext   richtext.Service
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	richtextSvc richtext.Service,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		richtext:   richtextSvc,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "customer_email", cmd.CustomerEmail)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority := vo.Priority(cmd.Priority)
	description := uc.richtext.Sanitize(cmd.Description)

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		description,
		priority,
		cmd.CustomerEmail,
		cmd.Tags,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.CustomFields) > 0 {
		newTicket.SetCustomFields(cmd.CustomFields)
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.CustomerEmail) == 0 {
		return errors.NewValidationError("customer email is required")
	}

	priority := vo.Priority(cmd.Priority)
	if !priority.IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
