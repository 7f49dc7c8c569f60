package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "autocrm/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id            uint
	title         string
	description   string
	status        vo.TicketStatus
	priority      vo.Priority
	customerEmail string
	tags          []string
	internalNotes string
	customFields  map[string]interface{}
	rating        *int
	ratingComment *string
	ratedAt       *time.Time
	resolvedAt    *time.Time
	createdAt     time.Time
	updatedAt     time.Time
	responses     []*Response
	attachments   []*Attachment
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	customerEmail string,
	tags []string,
) (*Ticket, error) {
	if len(strings.TrimSpace(title)) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(strings.TrimSpace(description)) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(customerEmail) == 0 {
		return nil, fmt.Errorf("customer email is required")
	}

	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()

	t := &Ticket{
		title:         title,
		description:   description,
		status:        vo.StatusOpen,
		priority:      priority,
		customerEmail: strings.ToLower(customerEmail),
		tags:          tags,
		customFields:  make(map[string]interface{}),
		createdAt:     now,
		updatedAt:     now,
		responses:     []*Response{},
		attachments:   []*Attachment{},
	}

	return t, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	customerEmail string,
	tags []string,
	internalNotes string,
	customFields map[string]interface{},
	rating *int,
	ratingComment *string,
	ratedAt *time.Time,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if tags == nil {
		tags = []string{}
	}
	if customFields == nil {
		customFields = make(map[string]interface{})
	}

	return &Ticket{
		id:            id,
		title:         title,
		description:   description,
		status:        status,
		priority:      priority,
		customerEmail: customerEmail,
		tags:          tags,
		internalNotes: internalNotes,
		customFields:  customFields,
		rating:        rating,
		ratingComment: ratingComment,
		ratedAt:       ratedAt,
		resolvedAt:    resolvedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		responses:     []*Response{},
		attachments:   []*Attachment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CustomerEmail() string {
	return t.customerEmail
}

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) InternalNotes() string {
	return t.internalNotes
}

func (t *Ticket) CustomFields() map[string]interface{} {
	fieldsCopy := make(map[string]interface{})
	for k, v := range t.customFields {
		fieldsCopy[k] = v
	}
	return fieldsCopy
}

func (t *Ticket) Rating() *int {
	return t.rating
}

func (t *Ticket) RatingComment() *string {
	return t.ratingComment
}

func (t *Ticket) RatedAt() *time.Time {
	return t.ratedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Responses() []*Response {
	responsesCopy := make([]*Response, len(t.responses))
	copy(responsesCopy, t.responses)
	return responsesCopy
}

func (t *Ticket) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetResponses(responses []*Response) {
	if responses == nil {
		responses = []*Response{}
	}
	t.responses = responses
}

func (t *Ticket) SetAttachments(attachments []*Attachment) {
	if attachments == nil {
		attachments = []*Attachment{}
	}
	t.attachments = attachments
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now().UTC()

	if newStatus.IsResolved() && t.resolvedAt == nil {
		now := time.Now().UTC()
		t.resolvedAt = &now
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now().UTC()

	return nil
}

func (t *Ticket) UpdateDetails(title, description string, tags []string) error {
	if len(strings.TrimSpace(title)) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Errorf("description is required")
	}

	if tags == nil {
		tags = []string{}
	}

	t.title = title
	t.description = description
	t.tags = tags
	t.updatedAt = time.Now().UTC()

	return nil
}

func (t *Ticket) SetInternalNotes(notes string) {
	t.internalNotes = notes
	t.updatedAt = time.Now().UTC()
}

func (t *Ticket) SetCustomFields(fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	t.customFields = fields
	t.updatedAt = time.Now().UTC()
}

// Rate records the customer's satisfaction score. A ticket can only be rated
// once, and only after it has been resolved.
func (t *Ticket) Rate(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if !t.status.IsResolved() {
		return fmt.Errorf("only resolved tickets can be rated")
	}
	if t.rating != nil {
		return fmt.Errorf("ticket has already been rated")
	}

	now := time.Now().UTC()
	t.rating = &rating
	t.ratingComment = &comment
	t.ratedAt = &now
	t.updatedAt = now

	return nil
}

func (t *Ticket) IsRated() bool {
	return t.rating != nil
}

func (t *Ticket) AddResponse(response *Response) error {
	if response == nil {
		return fmt.Errorf("response cannot be nil")
	}
	if response.TicketID() != t.id {
		return fmt.Errorf("response ticket ID mismatch")
	}

	t.responses = append(t.responses, response)
	t.updatedAt = time.Now().UTC()

	return nil
}

func (t *Ticket) AddAttachment(attachment *Attachment) error {
	if attachment == nil {
		return fmt.Errorf("attachment cannot be nil")
	}
	if attachment.TicketID() != t.id {
		return fmt.Errorf("attachment ticket ID mismatch")
	}

	t.attachments = append(t.attachments, attachment)
	t.updatedAt = time.Now().UTC()

	return nil
}

// CanBeViewedBy reports ticket visibility: staff and admin see everything,
// customers only tickets carrying their own email.
func (t *Ticket) CanBeViewedBy(userEmail string, userRole string) bool {
	if userRole == "admin" || userRole == "staff" {
		return true
	}
	return strings.EqualFold(t.customerEmail, userEmail)
}

func (t *Ticket) AgeAt(now time.Time) time.Duration {
	return now.Sub(t.createdAt)
}

func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if len(t.customerEmail) == 0 {
		return fmt.Errorf("customer email is required")
	}
	return nil
}
