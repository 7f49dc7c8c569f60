package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocrm/internal/application/ticket/usecases"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/utils"
)

// UploadAttachments handles POST /tickets/:id/attachments
func (h *TicketHandler) UploadAttachments(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.logger.Warnw("invalid multipart form", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid multipart form"))
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("no files provided"))
		return
	}

	uploads := make([]usecases.AttachmentUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
			utils.ErrorResponseWithError(c, errors.NewValidationError("file exceeds the maximum upload size"))
			return
		}

		f, err := fh.Open()
		if err != nil {
			h.logger.Errorw("failed to open uploaded file", "filename", fh.Filename, "error", err)
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
			return
		}
		defer f.Close()

		uploads = append(uploads, usecases.AttachmentUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Reader:      f,
		})
	}

	email, role := requesterFromContext(c)
	cmd := usecases.UploadAttachmentsCommand{
		TicketID:          ticketID,
		Files:             uploads,
		RequesterEmail:    email,
		RequesterRole:     role,
		AttachmentBaseURL: h.attachmentBaseURL,
	}

	result, err := h.uploadAttachmentsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachments uploaded successfully")
}

// DeleteAttachment handles DELETE /tickets/:id/attachments/:attachmentID
func (h *TicketHandler) DeleteAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachmentID, err := parseAttachmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	email, role := requesterFromContext(c)
	cmd := usecases.DeleteAttachmentCommand{
		TicketID:       ticketID,
		AttachmentID:   attachmentID,
		RequesterEmail: email,
		RequesterRole:  role,
	}

	result, err := h.deleteAttachmentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment deleted successfully", result)
}
