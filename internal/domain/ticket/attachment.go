package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Attachment references an uploaded file owned by exactly one ticket. The
// storage key addresses the object in the blob store; the public URL is
// derived at the interface layer.
type Attachment struct {
	id          uint
	ticketID    uint
	filename    string
	filesize    int64
	contentType string
	storageKey  string
	createdAt   time.Time
}

func NewAttachment(
	ticketID uint,
	filename string,
	filesize int64,
	contentType string,
	storageKey string,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(strings.TrimSpace(filename)) == 0 {
		return nil, fmt.Errorf("filename is required")
	}
	if filesize < 0 {
		return nil, fmt.Errorf("filesize cannot be negative")
	}
	if len(storageKey) == 0 {
		return nil, fmt.Errorf("storage key is required")
	}

	return &Attachment{
		ticketID:    ticketID,
		filename:    filename,
		filesize:    filesize,
		contentType: contentType,
		storageKey:  storageKey,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	filename string,
	filesize int64,
	contentType string,
	storageKey string,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(storageKey) == 0 {
		return nil, fmt.Errorf("storage key is required")
	}

	return &Attachment{
		id:          id,
		ticketID:    ticketID,
		filename:    filename,
		filesize:    filesize,
		contentType: contentType,
		storageKey:  storageKey,
		createdAt:   createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) Filesize() int64 {
	return a.filesize
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) StorageKey() string {
	return a.storageKey
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
