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

// UpdateTicketCommand carries a staff edit. Nil pointers leave the field
// untouched.
type UpdateTicketCommand struct {
	TicketID      uint
	Title         *string
	Description   *string
	Status        *string
	Priority      *string
	Tags          []string
	InternalNotes *string
	CustomFields  map[string]interface{}
}

type UpdateTicketResult struct {
	TicketID  uint
	Status    string
	Priority  string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	richtext   richtext.Service
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	richtextSvc richtext.Service,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		richtext:   richtextSvc,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for update", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	title := t.Title()
	if cmd.Title != nil {
		title = *cmd.Title
	}
	description := t.Description()
	if cmd.Description != nil {
		description = uc.richtext.Sanitize(*cmd.Description)
	}
	tags := t.Tags()
	if cmd.Tags != nil {
		tags = cmd.Tags
	}

	if err := t.UpdateDetails(title, description, tags); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.InternalNotes != nil {
		t.SetInternalNotes(uc.richtext.Sanitize(*cmd.InternalNotes))
	}

	if cmd.CustomFields != nil {
		t.SetCustomFields(cmd.CustomFields)
	}

	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(p); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Status != nil {
		s, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		// closed stays internal; ticket edits cannot move a ticket there.
		if s.IsClosed() {
			return nil, errors.NewValidationError("closed status cannot be set")
		}
		if err := t.ChangeStatus(s); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "status", t.Status().String())

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		Priority:  t.Priority().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
