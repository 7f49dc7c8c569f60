package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "autocrm/internal/interfaces/http/handlers/ticket"
	"autocrm/internal/interfaces/http/middleware"
	"autocrm/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)
		tickets.POST("/bulk",
			authorization.RequireStaff(),
			config.TicketHandler.BulkUpdateTickets)
		tickets.GET("/export",
			config.TicketHandler.ExportTickets)
		tickets.GET("/stats",
			authorization.RequireStaff(),
			config.TicketHandler.GetStats)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/rating",
			config.TicketHandler.RateTicket)
		tickets.POST("/:id/responses",
			config.TicketHandler.AddResponse)
		tickets.GET("/:id/responses",
			config.TicketHandler.ListResponses)
		tickets.POST("/:id/attachments",
			config.TicketHandler.UploadAttachments)
		tickets.DELETE("/:id/attachments/:attachmentID",
			config.TicketHandler.DeleteAttachment)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			authorization.RequireStaff(),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}
}
