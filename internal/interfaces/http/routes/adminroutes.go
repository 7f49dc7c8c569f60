package routes

import (
	"github.com/gin-gonic/gin"

	"autocrm/internal/interfaces/http/handlers"
	"autocrm/internal/interfaces/http/middleware"
	"autocrm/internal/shared/authorization"
)

type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/users", cfg.AdminHandler.ListUsers)
		admin.PATCH("/users/:id/role", cfg.AdminHandler.UpdateUserRole)
		admin.PATCH("/users/:id/team", cfg.AdminHandler.AssignUserTeam)

		admin.POST("/teams", cfg.AdminHandler.CreateTeam)
		admin.GET("/teams", cfg.AdminHandler.ListTeams)
		admin.DELETE("/teams/:id", cfg.AdminHandler.DeleteTeam)
	}
}
