package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	aiusecases "autocrm/internal/application/ai/usecases"
	ticketusecases "autocrm/internal/application/ticket/usecases"
	"autocrm/internal/shared/constants"
	"autocrm/internal/shared/logger"
	"autocrm/internal/shared/utils"
)

// AIHandler produces suggested replies for tickets. It loads the ticket and
// the customer's history itself so the draft use case stays free of
// repository concerns.
type AIHandler struct {
	generateDraftUC aiusecases.GenerateDraftExecutor
	getTicketUC     ticketusecases.GetTicketExecutor
	listTicketsUC   ticketusecases.ListTicketsExecutor
	logger          logger.Interface
}

func NewAIHandler(
	generateDraftUC aiusecases.GenerateDraftExecutor,
	getTicketUC ticketusecases.GetTicketExecutor,
	listTicketsUC ticketusecases.ListTicketsExecutor,
) *AIHandler {
	return &AIHandler{
		generateDraftUC: generateDraftUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		logger:          logger.NewLogger(),
	}
}

// GenerateDraft handles POST /tickets/:id/draft
func (h *AIHandler) GenerateDraft(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	email := c.GetString(constants.ContextKeyUserEmail)
	role := c.GetString(constants.ContextKeyUserRole)

	ticketDTO, err := h.getTicketUC.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{
		TicketID:       ticketID,
		RequesterEmail: email,
		RequesterRole:  role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Listing as the customer scopes the result to their tickets.
	history, err := h.listTicketsUC.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{
		RequesterEmail: ticketDTO.CustomerEmail,
		RequesterRole:  constants.RoleCustomer,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]aiusecases.CustomerHistoryItem, 0, len(history.Tickets))
	var ratingSum, ratingCount int
	for _, t := range history.Tickets {
		if t.ID == ticketDTO.ID {
			continue
		}
		items = append(items, aiusecases.CustomerHistoryItem{
			Title:  t.Title,
			Status: t.Status,
		})
		if t.Rating != nil {
			ratingSum += *t.Rating
			ratingCount++
		}
	}

	var avgRating *float64
	if ratingCount > 0 {
		avg := float64(ratingSum) / float64(ratingCount)
		avgRating = &avg
	}

	cmd := aiusecases.GenerateDraftCommand{
		TicketTitle:       ticketDTO.Title,
		TicketDescription: ticketDTO.Description,
		CustomerEmail:     ticketDTO.CustomerEmail,
		CustomerHistory:   items,
		AverageRating:     avgRating,
	}

	result, err := h.generateDraftUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
