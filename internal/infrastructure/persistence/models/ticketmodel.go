package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:200;not null"`
	Description   string `gorm:"type:text;not null"`
	Status        string `gorm:"size:20;not null;index"`
	Priority      string `gorm:"size:20;not null;index"`
	CustomerEmail string `gorm:"size:255;not null;index"`
	Tags          datatypes.JSON
	InternalNotes string `gorm:"type:text"`
	CustomFields  datatypes.JSON
	Rating        *int
	RatingComment *string `gorm:"type:text"`
	RatedAt       *int64
	ResolvedAt    *int64 `gorm:"index"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketResponseModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	Content      string `gorm:"type:text;not null"`
	AuthorID     uint   `gorm:"not null;index"`
	AuthorEmail  string `gorm:"size:255;not null"`
	ResponseType string `gorm:"size:20;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketResponseModel) TableName() string {
	return "ticket_responses"
}

type TicketAttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	Filename    string `gorm:"size:255;not null"`
	Filesize    int64  `gorm:"not null"`
	ContentType string `gorm:"size:100"`
	StorageKey  string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketAttachmentModel) TableName() string {
	return "ticket_attachments"
}
