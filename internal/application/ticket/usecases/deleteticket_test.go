package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocrm/internal/domain/ticket"
)

func TestDeleteTicketUseCase_Execute_Success(t *testing.T) {
	tk := makeTicket(t, 12, "jane@example.com")

	var deletedID uint
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			deletedID = ticketID
			return nil
		},
	}
	txMgr := &mockTxManager{}

	useCase := NewDeleteTicketUseCase(mockRepo, txMgr, mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 12})

	require.NoError(t, err)
	assert.Equal(t, uint(12), result.TicketID)
	assert.Equal(t, uint(12), deletedID)
	assert.Equal(t, 1, txMgr.Calls)
}

func TestDeleteTicketUseCase_Execute_RepoErrorPropagates(t *testing.T) {
	tk := makeTicket(t, 12, "jane@example.com")

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			return fmt.Errorf("delete failed")
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, &mockTxManager{}, mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 12})

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestDeleteTicketUseCase_Execute_NotFoundSkipsTransaction(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, nil
		},
	}
	txMgr := &mockTxManager{}

	useCase := NewDeleteTicketUseCase(mockRepo, txMgr, mockLogger{})
	_, err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 404})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Zero(t, txMgr.Calls)
}
