package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "autocrm/internal/domain/ticket/valueobjects"
)

// Response is an append-only entry in a ticket's conversation thread.
type Response struct {
	id           uint
	ticketID     uint
	content      string
	authorID     uint
	authorEmail  string
	responseType vo.ResponseType
	createdAt    time.Time
	updatedAt    time.Time
}

func NewResponse(
	ticketID uint,
	content string,
	authorID uint,
	authorEmail string,
	responseType vo.ResponseType,
) (*Response, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(strings.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !responseType.IsValid() {
		return nil, fmt.Errorf("invalid response type")
	}

	now := time.Now().UTC()

	return &Response{
		ticketID:     ticketID,
		content:      content,
		authorID:     authorID,
		authorEmail:  strings.ToLower(authorEmail),
		responseType: responseType,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructResponse(
	id uint,
	ticketID uint,
	content string,
	authorID uint,
	authorEmail string,
	responseType vo.ResponseType,
	createdAt, updatedAt time.Time,
) (*Response, error) {
	if id == 0 {
		return nil, fmt.Errorf("response ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !responseType.IsValid() {
		return nil, fmt.Errorf("invalid response type")
	}

	return &Response{
		id:           id,
		ticketID:     ticketID,
		content:      content,
		authorID:     authorID,
		authorEmail:  authorEmail,
		responseType: responseType,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (r *Response) ID() uint {
	return r.id
}

func (r *Response) TicketID() uint {
	return r.ticketID
}

func (r *Response) Content() string {
	return r.content
}

func (r *Response) AuthorID() uint {
	return r.authorID
}

func (r *Response) AuthorEmail() string {
	return r.authorEmail
}

func (r *Response) ResponseType() vo.ResponseType {
	return r.responseType
}

func (r *Response) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Response) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Response) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("response ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("response ID cannot be zero")
	}
	r.id = id
	return nil
}
