package routes

import (
	"github.com/gin-gonic/gin"

	"autocrm/internal/interfaces/http/handlers"
	"autocrm/internal/interfaces/http/middleware"
	"autocrm/internal/shared/authorization"
)

type EmailRouteConfig struct {
	EmailHandler   *handlers.EmailHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupEmailRoutes(engine *gin.Engine, cfg *EmailRouteConfig) {
	engine.POST("/tickets/:id/email",
		cfg.AuthMiddleware.RequireAuth(),
		authorization.RequireStaff(),
		cfg.EmailHandler.SendTicketEmail)
}
