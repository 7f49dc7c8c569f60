package mappers

import (
	"encoding/json"
	"fmt"

	"autocrm/internal/domain/ticket"
	vo "autocrm/internal/domain/ticket/valueobjects"
	"autocrm/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// ResponseToModel converts a response domain entity to a persistence model.
	ResponseToModel(r *ticket.Response) *models.TicketResponseModel

	// ResponseToDomain converts a response persistence model to a domain entity.
	ResponseToDomain(model *models.TicketResponseModel) (*ticket.Response, error)

	// AttachmentToModel converts an attachment domain entity to a persistence model.
	AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel

	// AttachmentToDomain converts an attachment persistence model to a domain entity.
	AttachmentToDomain(model *models.TicketAttachmentModel) (*ticket.Attachment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:            t.ID(),
		Title:         t.Title(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		CustomerEmail: t.CustomerEmail(),
		InternalNotes: t.InternalNotes(),
		Rating:        t.Rating(),
		RatingComment: t.RatingComment(),
		RatedAt:       timePtrToMillis(t.RatedAt()),
		ResolvedAt:    timePtrToMillis(t.ResolvedAt()),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}

	if len(t.Tags()) > 0 {
		tagsJSON, _ := json.Marshal(t.Tags())
		model.Tags = tagsJSON
	}

	if len(t.CustomFields()) > 0 {
		fieldsJSON, _ := json.Marshal(t.CustomFields())
		model.CustomFields = fieldsJSON
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
// Responses and attachments must be loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket priority (id=%d): %w", model.ID, err)
	}

	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket tags (id=%d): %w", model.ID, err)
		}
	}

	var customFields map[string]interface{}
	if len(model.CustomFields) > 0 {
		if err := json.Unmarshal(model.CustomFields, &customFields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket custom fields (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		status,
		priority,
		model.CustomerEmail,
		tags,
		model.InternalNotes,
		customFields,
		model.Rating,
		model.RatingComment,
		millisPtrToTime(model.RatedAt),
		millisPtrToTime(model.ResolvedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

// ResponseToModel converts a response domain entity to a persistence model.
func (m *TicketMapperImpl) ResponseToModel(r *ticket.Response) *models.TicketResponseModel {
	return &models.TicketResponseModel{
		ID:           r.ID(),
		TicketID:     r.TicketID(),
		Content:      r.Content(),
		AuthorID:     r.AuthorID(),
		AuthorEmail:  r.AuthorEmail(),
		ResponseType: r.ResponseType().String(),
		CreatedAt:    r.CreatedAt().UnixMilli(),
		UpdatedAt:    r.UpdatedAt().UnixMilli(),
	}
}

// ResponseToDomain converts a response persistence model to a domain entity.
func (m *TicketMapperImpl) ResponseToDomain(model *models.TicketResponseModel) (*ticket.Response, error) {
	responseType, err := vo.NewResponseType(model.ResponseType)
	if err != nil {
		return nil, fmt.Errorf("invalid response type (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructResponse(
		model.ID,
		model.TicketID,
		model.Content,
		model.AuthorID,
		model.AuthorEmail,
		responseType,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

// AttachmentToModel converts an attachment domain entity to a persistence model.
func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel {
	return &models.TicketAttachmentModel{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		Filename:    a.Filename(),
		Filesize:    a.Filesize(),
		ContentType: a.ContentType(),
		StorageKey:  a.StorageKey(),
		CreatedAt:   a.CreatedAt().UnixMilli(),
	}
}

// AttachmentToDomain converts an attachment persistence model to a domain entity.
func (m *TicketMapperImpl) AttachmentToDomain(model *models.TicketAttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.Filename,
		model.Filesize,
		model.ContentType,
		model.StorageKey,
		millisToTime(model.CreatedAt),
	)
}
