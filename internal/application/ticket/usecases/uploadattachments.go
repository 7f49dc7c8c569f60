package usecases

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"autocrm/internal/application/ticket/dto"
	"autocrm/internal/domain/ticket"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

// ObjectStorage is the blob store port backing ticket attachments.
type ObjectStorage interface {
	Store(ctx context.Context, key string, contentType string, r io.Reader) error
	Delete(ctx context.Context, key string) error
}

type AttachmentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type UploadAttachmentsCommand struct {
	TicketID          uint
	Files             []AttachmentUpload
	RequesterEmail    string
	RequesterRole     string
	AttachmentBaseURL string
}

type UploadAttachmentsResult struct {
	Attachments []dto.AttachmentDTO
}

// UploadAttachmentsUseCase stores each file under attachments/<uuid>.<ext>
// and inserts one row per file. Files are processed one at a time, in order.
type UploadAttachmentsUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	storage        ObjectStorage
	maxUploadBytes int64
	logger         logger.Interface
}

func NewUploadAttachmentsUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	storage ObjectStorage,
	maxUploadBytes int64,
	logger logger.Interface,
) *UploadAttachmentsUseCase {
	return &UploadAttachmentsUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

func (uc *UploadAttachmentsUseCase) Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*UploadAttachmentsResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Files) == 0 {
		return nil, errors.NewValidationError("at least one file is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	role := authorization.ParseUserRole(cmd.RequesterRole)
	if !t.CanBeViewedBy(cmd.RequesterEmail, string(role)) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	result := &UploadAttachmentsResult{}

	for _, f := range cmd.Files {
		if uc.maxUploadBytes > 0 && f.Size > uc.maxUploadBytes {
			return nil, errors.NewValidationError("file exceeds the maximum upload size")
		}

		key := "attachments/" + uuid.New().String() + filepath.Ext(f.Filename)

		if err := uc.storage.Store(ctx, key, f.ContentType, f.Reader); err != nil {
			uc.logger.Errorw("failed to store attachment", "ticket_id", t.ID(), "filename", f.Filename, "error", err)
			return nil, errors.NewInternalError("failed to store attachment")
		}

		attachment, err := ticket.NewAttachment(t.ID(), f.Filename, f.Size, f.ContentType, key)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
			uc.logger.Errorw("failed to save attachment row", "ticket_id", t.ID(), "key", key, "error", err)
			return nil, err
		}

		result.Attachments = append(result.Attachments, dto.ToAttachmentDTO(attachment, cmd.AttachmentBaseURL))
	}

	uc.logger.Infow("attachments uploaded", "ticket_id", t.ID(), "count", len(cmd.Files))

	return result, nil
}
