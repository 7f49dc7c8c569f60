package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"autocrm/internal/application/ticket/usecases"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/constants"
	"autocrm/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title         string                 `json:"title" binding:"required,max=200"`
	Description   string                 `json:"description" binding:"required"`
	Priority      string                 `json:"priority"`
	CustomerEmail string                 `json:"customer_email"`
	Tags          []string               `json:"tags"`
	CustomFields  map[string]interface{} `json:"custom_fields"`
}

// ToCommand builds the create command. Customers always file under their
// own address; only staff and admins may set customer_email explicitly.
func (r *CreateTicketRequest) ToCommand(requesterEmail, requesterRole string) usecases.CreateTicketCommand {
	customerEmail := r.CustomerEmail
	role := authorization.ParseUserRole(requesterRole)
	if customerEmail == "" || role == authorization.RoleCustomer {
		customerEmail = requesterEmail
	}

	return usecases.CreateTicketCommand{
		Title:         r.Title,
		Description:   r.Description,
		Priority:      r.Priority,
		CustomerEmail: customerEmail,
		Tags:          r.Tags,
		CustomFields:  r.CustomFields,
	}
}

type UpdateTicketRequest struct {
	Title         *string                `json:"title"`
	Description   *string                `json:"description"`
	Status        *string                `json:"status"`
	Priority      *string                `json:"priority"`
	InternalNotes *string                `json:"internal_notes"`
	Tags          []string               `json:"tags"`
	CustomFields  map[string]interface{} `json:"custom_fields"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:      ticketID,
		Title:         r.Title,
		Description:   r.Description,
		Status:        r.Status,
		Priority:      r.Priority,
		InternalNotes: r.InternalNotes,
		Tags:          r.Tags,
		CustomFields:  r.CustomFields,
	}
}

type BulkUpdateTicketsRequest struct {
	TicketIDs []uint  `json:"ticket_ids" binding:"required,min=1"`
	Status    *string `json:"status"`
	Priority  *string `json:"priority"`
}

func (r *BulkUpdateTicketsRequest) ToCommand(actorID uint) usecases.BulkUpdateTicketsCommand {
	return usecases.BulkUpdateTicketsCommand{
		TicketIDs: r.TicketIDs,
		Status:    r.Status,
		Priority:  r.Priority,
		ActorID:   actorID,
	}
}

type RateTicketRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type AddResponseRequest struct {
	Content      string `json:"content" binding:"required"`
	ResponseType string `json:"response_type"`
}

type ListTicketsRequest struct {
	Status   string
	Priority string
	Search   string
}

func (r *ListTicketsRequest) ToQuery(requesterEmail, requesterRole string) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:         r.Status,
		Priority:       r.Priority,
		Search:         r.Search,
		RequesterEmail: requesterEmail,
		RequesterRole:  requesterRole,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	return &ListTicketsRequest{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("q"),
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

func parseAttachmentID(c *gin.Context) (uint, error) {
	idStr := c.Param("attachmentID")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid attachment ID")
	}
	return uint(id), nil
}

// requesterFromContext returns the authenticated email and role placed by
// the auth middleware.
func requesterFromContext(c *gin.Context) (string, string) {
	email := c.GetString(constants.ContextKeyUserEmail)
	role := c.GetString(constants.ContextKeyUserRole)
	return email, role
}

func userIDFromContext(c *gin.Context) uint {
	if v, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
