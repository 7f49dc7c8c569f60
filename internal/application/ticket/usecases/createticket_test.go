package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocrm/internal/domain/ticket"
	vo "autocrm/internal/domain/ticket/valueobjects"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name: "urgent ticket with tags",
			command: CreateTicketCommand{
				Title:         "Checkout page returns 500",
				Description:   "<p>Every purchase attempt fails</p>",
				Priority:      string(vo.PriorityUrgent),
				CustomerEmail: "buyer@example.com",
				Tags:          []string{"checkout", "outage"},
			},
		},
		{
			name: "low priority ticket without tags",
			command: CreateTicketCommand{
				Title:         "Feature request: dark mode",
				Description:   "Would love a dark theme",
				Priority:      string(vo.PriorityLow),
				CustomerEmail: "fan@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var savedTicket *ticket.Ticket
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					if err := tkt.SetID(100); err != nil {
						return err
					}
					savedTicket = tkt
					return nil
				},
			}

			useCase := NewCreateTicketUseCase(mockRepo, mockRichtext{}, mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(100), result.TicketID)
			assert.Equal(t, vo.StatusOpen.String(), result.Status)
			assert.NotZero(t, result.CreatedAt)

			require.NotNil(t, savedTicket)
			assert.Equal(t, tt.command.Title, savedTicket.Title())
		})
	}
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
		wantErr string
	}{
		{
			name: "missing title",
			command: CreateTicketCommand{
				Description:   "something broke",
				Priority:      "high",
				CustomerEmail: "a@b.com",
			},
			wantErr: "title is required",
		},
		{
			name: "missing description",
			command: CreateTicketCommand{
				Title:         "Broken",
				Priority:      "high",
				CustomerEmail: "a@b.com",
			},
			wantErr: "description is required",
		},
		{
			name: "invalid priority",
			command: CreateTicketCommand{
				Title:         "Broken",
				Description:   "something broke",
				Priority:      "asap",
				CustomerEmail: "a@b.com",
			},
			wantErr: "invalid priority",
		},
		{
			name: "missing customer email",
			command: CreateTicketCommand{
				Title:       "Broken",
				Description: "something broke",
				Priority:    "high",
			},
			wantErr: "customer email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveCalled := false
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					saveCalled = true
					return nil
				},
			}

			useCase := NewCreateTicketUseCase(mockRepo, mockRichtext{}, mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, result)
			assert.False(t, saveCalled)
		})
	}
}

func TestCreateTicketUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return errors.New("connection refused")
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, mockRichtext{}, mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:         "Broken",
		Description:   "something broke",
		Priority:      "medium",
		CustomerEmail: "a@b.com",
	})

	require.Error(t, err)
	assert.Nil(t, result)
}
