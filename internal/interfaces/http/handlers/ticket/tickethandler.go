package ticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"autocrm/internal/application/ticket/usecases"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
	"autocrm/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC      usecases.CreateTicketExecutor
	getTicketUC         usecases.GetTicketExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	deleteTicketUC      usecases.DeleteTicketExecutor
	bulkUpdateUC        usecases.BulkUpdateTicketsExecutor
	rateTicketUC        usecases.RateTicketExecutor
	addResponseUC       usecases.AddResponseExecutor
	listResponsesUC     usecases.ListResponsesExecutor
	exportTicketsUC     usecases.ExportTicketsExecutor
	statsUC             usecases.GetTicketStatsExecutor
	uploadAttachmentsUC usecases.UploadAttachmentsExecutor
	deleteAttachmentUC  usecases.DeleteAttachmentExecutor
	attachmentBaseURL   string
	maxUploadBytes      int64
	logger              logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	bulkUpdateUC usecases.BulkUpdateTicketsExecutor,
	rateTicketUC usecases.RateTicketExecutor,
	addResponseUC usecases.AddResponseExecutor,
	listResponsesUC usecases.ListResponsesExecutor,
	exportTicketsUC usecases.ExportTicketsExecutor,
	statsUC usecases.GetTicketStatsExecutor,
	uploadAttachmentsUC usecases.UploadAttachmentsExecutor,
	deleteAttachmentUC usecases.DeleteAttachmentExecutor,
	attachmentBaseURL string,
	maxUploadBytes int64,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:      createTicketUC,
		getTicketUC:         getTicketUC,
		listTicketsUC:       listTicketsUC,
		updateTicketUC:      updateTicketUC,
		deleteTicketUC:      deleteTicketUC,
		bulkUpdateUC:        bulkUpdateUC,
		rateTicketUC:        rateTicketUC,
		addResponseUC:       addResponseUC,
		listResponsesUC:     listResponsesUC,
		exportTicketsUC:     exportTicketsUC,
		statsUC:             statsUC,
		uploadAttachmentsUC: uploadAttachmentsUC,
		deleteAttachmentUC:  deleteAttachmentUC,
		attachmentBaseURL:   attachmentBaseURL,
		maxUploadBytes:      maxUploadBytes,
		logger:              logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	email, role := requesterFromContext(c)
	cmd := req.ToCommand(email, role)

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	email, role := requesterFromContext(c)
	query := usecases.GetTicketQuery{
		TicketID:          ticketID,
		RequesterEmail:    email,
		RequesterRole:     role,
		AttachmentBaseURL: h.attachmentBaseURL,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)

	email, role := requesterFromContext(c)
	query := req.ToQuery(email, role)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{TicketID: ticketID}
	if _, err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// BulkUpdateTickets handles POST /tickets/bulk
func (h *TicketHandler) BulkUpdateTickets(c *gin.Context) {
	var req BulkUpdateTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk update", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.bulkUpdateUC.Execute(c.Request.Context(), req.ToCommand(userIDFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tickets updated successfully", result)
}

// RateTicket handles POST /tickets/:id/rating
func (h *TicketHandler) RateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for rate ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	email, _ := requesterFromContext(c)
	cmd := usecases.RateTicketCommand{
		TicketID:       ticketID,
		Rating:         req.Rating,
		Comment:        req.Comment,
		RequesterEmail: email,
	}

	result, err := h.rateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket rated successfully", result)
}

// AddResponse handles POST /tickets/:id/responses
func (h *TicketHandler) AddResponse(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add response", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	userID := userIDFromContext(c)
	email, role := requesterFromContext(c)
	cmd := usecases.AddResponseCommand{
		TicketID:     ticketID,
		Content:      req.Content,
		AuthorID:     userID,
		AuthorEmail:  email,
		AuthorRole:   role,
		ResponseType: req.ResponseType,
	}

	result, err := h.addResponseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Response added successfully")
}

// ListResponses handles GET /tickets/:id/responses
func (h *TicketHandler) ListResponses(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	email, role := requesterFromContext(c)
	query := usecases.ListResponsesQuery{
		TicketID:       ticketID,
		RequesterEmail: email,
		RequesterRole:  role,
	}

	result, err := h.listResponsesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportTickets handles GET /tickets/export
func (h *TicketHandler) ExportTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)

	email, role := requesterFromContext(c)
	query := usecases.ExportTicketsQuery{
		Status:         req.Status,
		Priority:       req.Priority,
		Search:         req.Search,
		RequesterEmail: email,
		RequesterRole:  role,
	}

	result, err := h.exportTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, "text/csv", result.CSV)
}

// GetStats handles GET /tickets/stats
func (h *TicketHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context(), usecases.GetTicketStatsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
