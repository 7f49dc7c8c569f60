package usecases

import (
	"context"
	"io"
	"time"

	"autocrm/internal/domain/ticket"
	vo "autocrm/internal/domain/ticket/valueobjects"
	"autocrm/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc               func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc             func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc             func(ctx context.Context, ticketID uint) error
	GetByIDFunc            func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc               func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	BulkUpdateStatusFunc   func(ctx context.Context, ticketIDs []uint, status vo.TicketStatus, resolvedAt *time.Time) error
	BulkUpdatePriorityFunc func(ctx context.Context, ticketIDs []uint, priority vo.Priority) error
	GetStatsFunc           func(ctx context.Context, filter ticket.TicketFilter) (*ticket.Stats, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) BulkUpdateStatus(ctx context.Context, ticketIDs []uint, status vo.TicketStatus, resolvedAt *time.Time) error {
	if m.BulkUpdateStatusFunc != nil {
		return m.BulkUpdateStatusFunc(ctx, ticketIDs, status, resolvedAt)
	}
	return nil
}

func (m *mockTicketRepository) BulkUpdatePriority(ctx context.Context, ticketIDs []uint, priority vo.Priority) error {
	if m.BulkUpdatePriorityFunc != nil {
		return m.BulkUpdatePriorityFunc(ctx, ticketIDs, priority)
	}
	return nil
}

func (m *mockTicketRepository) GetStats(ctx context.Context, filter ticket.TicketFilter) (*ticket.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, filter)
	}
	return nil, nil
}

type mockResponseRepository struct {
	SaveFunc          func(ctx context.Context, r *ticket.Response) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Response, error)
}

func (m *mockResponseRepository) Save(ctx context.Context, r *ticket.Response) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockResponseRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Response, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc          func(ctx context.Context, a *ticket.Attachment) error
	GetByIDFunc       func(ctx context.Context, attachmentID uint) (*ticket.Attachment, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	DeleteFunc        func(ctx context.Context, attachmentID uint) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, attachmentID)
	}
	return nil
}

type mockStatsCache struct {
	GetFunc func(ctx context.Context) (*ticket.Stats, error)
	SetFunc func(ctx context.Context, stats *ticket.Stats) error
}

func (m *mockStatsCache) Get(ctx context.Context) (*ticket.Stats, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatsCache) Set(ctx context.Context, stats *ticket.Stats) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, stats)
	}
	return nil
}

type mockObjectStorage struct {
	StoreFunc  func(ctx context.Context, key string, contentType string, r io.Reader) error
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *mockObjectStorage) Store(ctx context.Context, key string, contentType string, r io.Reader) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, key, contentType, r)
	}
	return nil
}

func (m *mockObjectStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

// mockTxManager runs the unit of work inline; Err short-circuits it to
// simulate a rollback.
type mockTxManager struct {
	Err   error
	Calls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx)
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                   {}
func (mockLogger) Info(msg string, args ...any)                    {}
func (mockLogger) Warn(msg string, args ...any)                    {}
func (mockLogger) Error(msg string, args ...any)                   {}
func (mockLogger) Fatal(msg string, args ...any)                   {}
func (m mockLogger) With(args ...any) logger.Interface             { return m }
func (m mockLogger) Named(name string) logger.Interface            { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

// mockRichtext passes content through untouched so assertions stay simple.
type mockRichtext struct{}

func (mockRichtext) Sanitize(s string) string  { return s }
func (mockRichtext) StripTags(s string) string { return s }
func (mockRichtext) DraftToHTML(s string) (string, error) {
	return s, nil
}
