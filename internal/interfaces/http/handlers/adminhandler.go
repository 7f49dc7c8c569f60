package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	teamusecases "autocrm/internal/application/team/usecases"
	userusecases "autocrm/internal/application/user/usecases"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
	"autocrm/internal/shared/utils"
)

// AdminHandler serves user and team administration. Every route behind it
// requires the admin role.
type AdminHandler struct {
	listUsersUC      userusecases.ListUsersExecutor
	updateUserRoleUC userusecases.UpdateUserRoleExecutor
	assignUserTeamUC userusecases.AssignUserTeamExecutor
	createTeamUC     teamusecases.CreateTeamExecutor
	listTeamsUC      teamusecases.ListTeamsExecutor
	deleteTeamUC     teamusecases.DeleteTeamExecutor
	logger           logger.Interface
}

func NewAdminHandler(
	listUsersUC userusecases.ListUsersExecutor,
	updateUserRoleUC userusecases.UpdateUserRoleExecutor,
	assignUserTeamUC userusecases.AssignUserTeamExecutor,
	createTeamUC teamusecases.CreateTeamExecutor,
	listTeamsUC teamusecases.ListTeamsExecutor,
	deleteTeamUC teamusecases.DeleteTeamExecutor,
) *AdminHandler {
	return &AdminHandler{
		listUsersUC:      listUsersUC,
		updateUserRoleUC: updateUserRoleUC,
		assignUserTeamUC: assignUserTeamUC,
		createTeamUC:     createTeamUC,
		listTeamsUC:      listTeamsUC,
		deleteTeamUC:     deleteTeamUC,
		logger:           logger.NewLogger(),
	}
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type AssignUserTeamRequest struct {
	TeamID *uint `json:"team_id"`
}

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context(), userusecases.ListUsersQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, int64(len(result.Users)))
}

// UpdateUserRole handles PUT /admin/users/:id/role
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user role", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := userusecases.UpdateUserRoleCommand{
		UserID: userID,
		Role:   req.Role,
	}

	result, err := h.updateUserRoleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User role updated successfully", result)
}

// AssignUserTeam handles PUT /admin/users/:id/team. A null team_id clears
// the assignment.
func (h *AdminHandler) AssignUserTeam(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignUserTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign user team", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := userusecases.AssignUserTeamCommand{
		UserID: userID,
		TeamID: req.TeamID,
	}

	result, err := h.assignUserTeamUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User team updated successfully", result)
}

// CreateTeam handles POST /admin/teams
func (h *AdminHandler) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create team", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := teamusecases.CreateTeamCommand{
		Name:        req.Name,
		Description: req.Description,
	}

	result, err := h.createTeamUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Team created successfully")
}

// ListTeams handles GET /admin/teams
func (h *AdminHandler) ListTeams(c *gin.Context) {
	result, err := h.listTeamsUC.Execute(c.Request.Context(), teamusecases.ListTeamsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Teams, int64(len(result.Teams)))
}

// DeleteTeam handles DELETE /admin/teams/:id
func (h *AdminHandler) DeleteTeam(c *gin.Context) {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := teamusecases.DeleteTeamCommand{TeamID: teamID}
	if _, err := h.deleteTeamUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Team deleted successfully", nil)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
