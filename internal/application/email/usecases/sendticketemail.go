package usecases

import (
	"context"

	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

// TicketEmailSender delivers a ticket notification. Implemented by the SMTP
// service, which owns the HTML template.
type TicketEmailSender interface {
	SendTicketEmail(to, subject, content string, ticketID uint, customerName string) error
}

type SendTicketEmailCommand struct {
	To           string
	Subject      string
	Content      string
	TicketID     uint
	CustomerName string
}

type SendTicketEmailResult struct {
	To       string
	TicketID uint
}

// SendTicketEmailUseCase sends the outbound message once; delivery failures
// surface to the caller without retry.
type SendTicketEmailUseCase struct {
	sender TicketEmailSender
	logger logger.Interface
}

func NewSendTicketEmailUseCase(
	sender TicketEmailSender,
	logger logger.Interface,
) *SendTicketEmailUseCase {
	return &SendTicketEmailUseCase{
		sender: sender,
		logger: logger,
	}
}

func (uc *SendTicketEmailUseCase) Execute(ctx context.Context, cmd SendTicketEmailCommand) (*SendTicketEmailResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	if err := uc.sender.SendTicketEmail(cmd.To, cmd.Subject, cmd.Content, cmd.TicketID, cmd.CustomerName); err != nil {
		uc.logger.Errorw("failed to send ticket email", "to", cmd.To, "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewUnavailableError("failed to send email")
	}

	uc.logger.Infow("ticket email sent", "to", cmd.To, "ticket_id", cmd.TicketID)

	return &SendTicketEmailResult{
		To:       cmd.To,
		TicketID: cmd.TicketID,
	}, nil
}

func (uc *SendTicketEmailUseCase) validateCommand(cmd SendTicketEmailCommand) error {
	if len(cmd.To) == 0 {
		return errors.NewValidationError("recipient is required")
	}
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	return nil
}
