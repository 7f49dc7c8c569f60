package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocrm/internal/domain/ticket"
	vo "autocrm/internal/domain/ticket/valueobjects"
)

func strptr(s string) *string { return &s }

func TestUpdateTicketUseCase_Execute_Success(t *testing.T) {
	tk := makeTicket(t, 9, "jane@example.com")

	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updated = tkt
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, mockRichtext{}, mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      9,
		Title:         strptr("Updated title"),
		Status:        strptr("in_progress"),
		Priority:      strptr("urgent"),
		Tags:          []string{"triaged"},
		InternalNotes: strptr("customer called twice"),
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
	assert.Equal(t, "urgent", result.Priority)

	require.NotNil(t, updated)
	assert.Equal(t, "Updated title", updated.Title())
	assert.Equal(t, []string{"triaged"}, updated.Tags())
	assert.Equal(t, "customer called twice", updated.InternalNotes())
}

func TestUpdateTicketUseCase_Execute_ResolvedStampsTime(t *testing.T) {
	tk := makeTicket(t, 9, "jane@example.com")

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, mockRichtext{}, mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 9,
		Status:   strptr("resolved"),
	})

	require.NoError(t, err)
	require.NotNil(t, tk.ResolvedAt())
}

func TestUpdateTicketUseCase_Execute_RejectsClosedStatus(t *testing.T) {
	tk := makeTicket(t, 9, "jane@example.com")

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, mockRichtext{}, mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 9,
		Status:   strptr("closed"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed status cannot be set")
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

func TestUpdateTicketUseCase_Execute_RejectsClosedOnResolvedTicket(t *testing.T) {
	tk := makeTicket(t, 9, "jane@example.com")
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))

	var repoCalled bool
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			repoCalled = true
			return nil
		},
	}

	// The state machine accepts resolved -> closed internally, but edits
	// through the API must not reach it.
	useCase := NewUpdateTicketUseCase(mockRepo, mockRichtext{}, mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 9,
		Status:   strptr("closed"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed status cannot be set")
	assert.Equal(t, vo.StatusResolved, tk.Status())
	assert.False(t, repoCalled)
}

func TestUpdateTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, mockRichtext{}, mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 404,
		Title:    strptr("x"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
