package dto

import (
	"time"

	"autocrm/internal/domain/ticket"
)

type TicketDTO struct {
	ID            uint                   `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Status        string                 `json:"status"`
	Priority      string                 `json:"priority"`
	CustomerEmail string                 `json:"customer_email"`
	Tags          []string               `json:"tags"`
	InternalNotes string                 `json:"internal_notes,omitempty"`
	CustomFields  map[string]interface{} `json:"custom_fields,omitempty"`
	Rating        *int                   `json:"rating"`
	RatingComment *string                `json:"rating_comment"`
	RatedAt       *time.Time             `json:"rated_at"`
	ResolvedAt    *time.Time             `json:"resolved_at"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	Responses     []ResponseDTO          `json:"responses,omitempty"`
	Attachments   []AttachmentDTO        `json:"attachments,omitempty"`
}

type ResponseDTO struct {
	ID           uint      `json:"id"`
	TicketID     uint      `json:"ticket_id"`
	Content      string    `json:"content"`
	AuthorID     uint      `json:"author_id"`
	AuthorEmail  string    `json:"author_email"`
	ResponseType string    `json:"response_type"`
	CreatedAt    time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	Filename    string    `json:"filename"`
	Filesize    int64     `json:"filesize"`
	ContentType string    `json:"content_type"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

type StatsDTO struct {
	Total                int64            `json:"total"`
	ResolvedCount        int64            `json:"resolved_count"`
	AvgResolutionDays    float64          `json:"avg_resolution_days"`
	StatusDistribution   map[string]int64 `json:"status_distribution"`
	PriorityDistribution map[string]int64 `json:"priority_distribution"`
	AgeBuckets           AgeBucketsDTO    `json:"age_buckets"`
}

type AgeBucketsDTO struct {
	UnderOneDay   int64 `json:"under_one_day"`
	UnderOneWeek  int64 `json:"under_one_week"`
	UnderOneMonth int64 `json:"under_one_month"`
	OverOneMonth  int64 `json:"over_one_month"`
}

// ToTicketDTO maps the aggregate for API output. Internal notes are staff
// only and omitted for customers.
func ToTicketDTO(t *ticket.Ticket, includeInternal bool, attachmentBaseURL string) *TicketDTO {
	if t == nil {
		return nil
	}

	d := &TicketDTO{
		ID:            t.ID(),
		Title:         t.Title(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		CustomerEmail: t.CustomerEmail(),
		Tags:          t.Tags(),
		CustomFields:  t.CustomFields(),
		Rating:        t.Rating(),
		RatingComment: t.RatingComment(),
		RatedAt:       t.RatedAt(),
		ResolvedAt:    t.ResolvedAt(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}

	if includeInternal {
		d.InternalNotes = t.InternalNotes()
	}

	for _, r := range t.Responses() {
		d.Responses = append(d.Responses, ToResponseDTO(r))
	}
	for _, a := range t.Attachments() {
		d.Attachments = append(d.Attachments, ToAttachmentDTO(a, attachmentBaseURL))
	}

	return d
}

func ToResponseDTO(r *ticket.Response) ResponseDTO {
	return ResponseDTO{
		ID:           r.ID(),
		TicketID:     r.TicketID(),
		Content:      r.Content(),
		AuthorID:     r.AuthorID(),
		AuthorEmail:  r.AuthorEmail(),
		ResponseType: r.ResponseType().String(),
		CreatedAt:    r.CreatedAt(),
	}
}

func ToAttachmentDTO(a *ticket.Attachment, baseURL string) AttachmentDTO {
	return AttachmentDTO{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		Filename:    a.Filename(),
		Filesize:    a.Filesize(),
		ContentType: a.ContentType(),
		URL:         baseURL + "/" + a.StorageKey(),
		CreatedAt:   a.CreatedAt(),
	}
}

func ToStatsDTO(s *ticket.Stats) *StatsDTO {
	if s == nil {
		return nil
	}
	return &StatsDTO{
		Total:                s.Total,
		ResolvedCount:        s.ResolvedCount,
		AvgResolutionDays:    s.AvgResolutionDays,
		StatusDistribution:   s.StatusDistribution,
		PriorityDistribution: s.PriorityDistribution,
		AgeBuckets: AgeBucketsDTO{
			UnderOneDay:   s.AgeBuckets.UnderOneDay,
			UnderOneWeek:  s.AgeBuckets.UnderOneWeek,
			UnderOneMonth: s.AgeBuckets.UnderOneMonth,
			OverOneMonth:  s.AgeBuckets.OverOneMonth,
		},
	}
}
