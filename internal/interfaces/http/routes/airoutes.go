package routes

import (
	"github.com/gin-gonic/gin"

	"autocrm/internal/interfaces/http/handlers"
	"autocrm/internal/interfaces/http/middleware"
	"autocrm/internal/shared/authorization"
)

// AIRouteConfig holds dependencies for draft generation routes. AIHandler
// may be nil when no completion backend is configured.
type AIRouteConfig struct {
	AIHandler      *handlers.AIHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAIRoutes(engine *gin.Engine, cfg *AIRouteConfig) {
	if cfg.AIHandler == nil {
		return
	}

	engine.POST("/tickets/:id/draft",
		cfg.AuthMiddleware.RequireAuth(),
		authorization.RequireStaff(),
		cfg.AIHandler.GenerateDraft)
}
