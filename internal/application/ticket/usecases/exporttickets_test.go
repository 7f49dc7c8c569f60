package usecases

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocrm/internal/domain/ticket"
	vo "autocrm/internal/domain/ticket/valueobjects"
	"autocrm/internal/shared/services/richtext"
)

func TestExportTicketsUseCase_Execute(t *testing.T) {
	tk, err := ticket.NewTicket(
		"Broken, badly",
		"<p>It <b>really</b> is broken</p>",
		vo.PriorityHigh,
		"jane@example.com",
		[]string{"bug", "ui"},
	)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(42))
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))

	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			return []*ticket.Ticket{tk}, 1, nil
		},
	}

	useCase := NewExportTicketsUseCase(mockRepo, richtext.NewService(), mockLogger{})
	result, err := useCase.Execute(context.Background(), ExportTicketsQuery{RequesterRole: "admin"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "tickets.csv", result.Filename)

	records, err := csv.NewReader(strings.NewReader(string(result.CSV))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"ID", "Title", "Status", "Priority", "Customer", "Created", "Resolved", "Description", "Tags"}, records[0])

	row := records[1]
	assert.Equal(t, "42", row[0])
	assert.Equal(t, "Broken, badly", row[1])
	assert.Equal(t, "resolved", row[2])
	assert.Equal(t, "high", row[3])
	assert.Equal(t, "jane@example.com", row[4])
	assert.NotEmpty(t, row[6])
	assert.NotContains(t, row[7], "<")
	assert.Contains(t, row[7], "really")
	assert.Equal(t, "bug, ui", row[8])
}

func TestExportTicketsUseCase_Execute_CustomerScoped(t *testing.T) {
	var capturedFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			capturedFilter = filter
			return nil, 0, nil
		},
	}

	useCase := NewExportTicketsUseCase(mockRepo, richtext.NewService(), mockLogger{})
	result, err := useCase.Execute(context.Background(), ExportTicketsQuery{
		RequesterEmail: "jane@example.com",
		RequesterRole:  "customer",
	})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", capturedFilter.CustomerEmail)

	records, err := csv.NewReader(strings.NewReader(string(result.CSV))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
