package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	emailusecases "autocrm/internal/application/email/usecases"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
	"autocrm/internal/shared/utils"
)

type EmailHandler struct {
	sendTicketEmailUC emailusecases.SendTicketEmailExecutor
	logger            logger.Interface
}

func NewEmailHandler(sendTicketEmailUC emailusecases.SendTicketEmailExecutor) *EmailHandler {
	return &EmailHandler{
		sendTicketEmailUC: sendTicketEmailUC,
		logger:            logger.NewLogger(),
	}
}

type SendTicketEmailRequest struct {
	To           string `json:"to" binding:"required,email"`
	Subject      string `json:"subject" binding:"required"`
	Content      string `json:"content" binding:"required"`
	CustomerName string `json:"customer_name"`
}

// SendTicketEmail handles POST /tickets/:id/email
func (h *EmailHandler) SendTicketEmail(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendTicketEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send ticket email", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := emailusecases.SendTicketEmailCommand{
		To:           req.To,
		Subject:      req.Subject,
		Content:      req.Content,
		TicketID:     ticketID,
		CustomerName: req.CustomerName,
	}

	result, err := h.sendTicketEmailUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email sent successfully", result)
}
