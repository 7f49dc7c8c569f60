package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocrm/internal/domain/ticket"
)

func TestAddResponseUseCase_Execute_Success(t *testing.T) {
	tk := makeTicket(t, 3, "jane@example.com")

	var saved *ticket.Response
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	mockResponses := &mockResponseRepository{
		SaveFunc: func(ctx context.Context, r *ticket.Response) error {
			if err := r.SetID(77); err != nil {
				return err
			}
			saved = r
			return nil
		},
	}

	useCase := NewAddResponseUseCase(mockTickets, mockResponses, mockRichtext{}, mockLogger{})
	result, err := useCase.Execute(context.Background(), AddResponseCommand{
		TicketID:    3,
		Content:     "<p>We are on it</p>",
		AuthorID:    2,
		AuthorEmail: "agent@autocrm.com",
		AuthorRole:  "staff",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(77), result.ResponseID)
	assert.Equal(t, uint(3), result.TicketID)

	require.NotNil(t, saved)
	assert.Equal(t, "manual", saved.ResponseType().String())
}

func TestAddResponseUseCase_Execute_AIGeneratedType(t *testing.T) {
	tk := makeTicket(t, 3, "jane@example.com")

	var saved *ticket.Response
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	mockResponses := &mockResponseRepository{
		SaveFunc: func(ctx context.Context, r *ticket.Response) error {
			if err := r.SetID(78); err != nil {
				return err
			}
			saved = r
			return nil
		},
	}

	useCase := NewAddResponseUseCase(mockTickets, mockResponses, mockRichtext{}, mockLogger{})
	_, err := useCase.Execute(context.Background(), AddResponseCommand{
		TicketID:     3,
		Content:      "draft reply",
		AuthorID:     2,
		AuthorEmail:  "agent@autocrm.com",
		AuthorRole:   "staff",
		ResponseType: "ai_generated",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "ai_generated", saved.ResponseType().String())
}

func TestAddResponseUseCase_Execute_CustomerForeignTicket(t *testing.T) {
	tk := makeTicket(t, 3, "jane@example.com")

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	useCase := NewAddResponseUseCase(mockTickets, &mockResponseRepository{}, mockRichtext{}, mockLogger{})
	_, err := useCase.Execute(context.Background(), AddResponseCommand{
		TicketID:    3,
		Content:     "let me in",
		AuthorID:    8,
		AuthorEmail: "other@example.com",
		AuthorRole:  "customer",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access")
}

func TestAddResponseUseCase_Execute_ValidationErrors(t *testing.T) {
	useCase := NewAddResponseUseCase(&mockTicketRepository{}, &mockResponseRepository{}, mockRichtext{}, mockLogger{})

	tests := []struct {
		name    string
		command AddResponseCommand
	}{
		{"missing ticket id", AddResponseCommand{Content: "x", AuthorID: 1}},
		{"missing content", AddResponseCommand{TicketID: 1, AuthorID: 1}},
		{"missing author", AddResponseCommand{TicketID: 1, Content: "x"}},
		{"bad type", AddResponseCommand{TicketID: 1, Content: "x", AuthorID: 1, ResponseType: "robot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.Execute(context.Background(), tt.command)
			require.Error(t, err)
		})
	}
}
