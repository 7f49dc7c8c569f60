package ticket

import (
	"context"
	"time"

	vo "autocrm/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	BulkUpdateStatus(ctx context.Context, ticketIDs []uint, status vo.TicketStatus, resolvedAt *time.Time) error
	BulkUpdatePriority(ctx context.Context, ticketIDs []uint, priority vo.Priority) error
	GetStats(ctx context.Context, filter TicketFilter) (*Stats, error)
}

// TicketFilter narrows List and GetStats. Search matches a case-insensitive
// substring of title, description, customer email, or tags. CustomerEmail
// scopes customers to their own tickets; empty means no scoping.
type TicketFilter struct {
	Status        *vo.TicketStatus
	Priority      *vo.Priority
	Search        string
	CustomerEmail string
}

// Stats is the aggregate view behind the performance dashboard.
type Stats struct {
	Total                int64
	AvgResolutionDays    float64
	ResolvedCount        int64
	StatusDistribution   map[string]int64
	PriorityDistribution map[string]int64
	AgeBuckets           AgeBuckets
}

// AgeBuckets counts tickets by age since creation.
type AgeBuckets struct {
	UnderOneDay   int64 `json:"under_one_day"`
	UnderOneWeek  int64 `json:"under_one_week"`
	UnderOneMonth int64 `json:"under_one_month"`
	OverOneMonth  int64 `json:"over_one_month"`
}

type ResponseRepository interface {
	Save(ctx context.Context, response *Response) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Response, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	Delete(ctx context.Context, attachmentID uint) error
}
