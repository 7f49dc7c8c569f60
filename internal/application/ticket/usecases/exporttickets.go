package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"autocrm/internal/domain/ticket"
	"autocrm/internal/shared/logger"
	"autocrm/internal/shared/services/richtext"
)

var exportHeader = []string{"ID", "Title", "Status", "Priority", "Customer", "Created", "Resolved", "Description", "Tags"}

type ExportTicketsQuery struct {
	Status         string
	Priority       string
	Search         string
	RequesterEmail string
	RequesterRole  string
}

type ExportTicketsResult struct {
	CSV      []byte
	Filename string
}

// ExportTicketsUseCase renders the caller-visible filtered ticket set as
// CSV. Descriptions are stripped to plain text first.
type ExportTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	richtext   richtext.Service
	logger     logger.Interface
}

func NewExportTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	richtextSvc richtext.Service,
	logger logger.Interface,
) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo: ticketRepo,
		richtext:   richtextSvc,
		logger:     logger,
	}
}

func (uc *ExportTicketsUseCase) Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error) {
	filter, err := buildTicketFilter(query.Status, query.Priority, query.Search, query.RequesterEmail, query.RequesterRole)
	if err != nil {
		return nil, err
	}

	tickets, _, err := uc.ticketRepo.List(ctx, *filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets for export", "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, t := range tickets {
		resolved := ""
		if t.ResolvedAt() != nil {
			resolved = t.ResolvedAt().Format("2006-01-02")
		}

		record := []string{
			fmt.Sprintf("%d", t.ID()),
			t.Title(),
			t.Status().String(),
			t.Priority().String(),
			t.CustomerEmail(),
			t.CreatedAt().Format("2006-01-02"),
			resolved,
			uc.richtext.StripTags(t.Description()),
			strings.Join(t.Tags(), ", "),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	uc.logger.Infow("tickets exported", "count", len(tickets))

	return &ExportTicketsResult{
		CSV:      buf.Bytes(),
		Filename: "tickets.csv",
	}, nil
}
