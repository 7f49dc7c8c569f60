package usecases

import (
	"context"

	"autocrm/internal/application/ticket/dto"
	"autocrm/internal/domain/ticket"
	vo "autocrm/internal/domain/ticket/valueobjects"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status         string
	Priority       string
	Search         string
	RequesterEmail string
	RequesterRole  string
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := buildTicketFilter(query.Status, query.Priority, query.Search, query.RequesterEmail, query.RequesterRole)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, *filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, *dto.ToTicketDTO(t, authorization.ParseUserRole(query.RequesterRole).CanViewAllTickets(), ""))
	}

	return &ListTicketsResult{
		Tickets: items,
		Total:   total,
	}, nil
}

// buildTicketFilter translates query params into a repository filter,
// scoping customers to their own tickets.
func buildTicketFilter(status, priority, search, requesterEmail, requesterRole string) (*ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		Search: search,
	}

	if status != "" {
		s, err := vo.NewTicketStatus(status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &s
	}

	if priority != "" {
		p, err := vo.NewPriority(priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &p
	}

	role := authorization.ParseUserRole(requesterRole)
	if !role.CanViewAllTickets() {
		if requesterEmail == "" {
			return nil, errors.NewForbiddenError("requester email is required")
		}
		filter.CustomerEmail = requesterEmail
	}

	return &filter, nil
}
