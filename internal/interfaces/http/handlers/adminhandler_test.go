package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	teamusecases "autocrm/internal/application/team/usecases"
	userdto "autocrm/internal/application/user/dto"
	userusecases "autocrm/internal/application/user/usecases"
	"autocrm/internal/interfaces/http/handlers/testutil"
	"autocrm/internal/shared/constants"
	"autocrm/internal/shared/errors"
)

type mockListUsersUC struct {
	result *userusecases.ListUsersResult
	err    error
}

func (m *mockListUsersUC) Execute(_ context.Context, _ userusecases.ListUsersQuery) (*userusecases.ListUsersResult, error) {
	return m.result, m.err
}

type mockUpdateUserRoleUC struct {
	result  *userusecases.UpdateUserRoleResult
	err     error
	lastCmd userusecases.UpdateUserRoleCommand
}

func (m *mockUpdateUserRoleUC) Execute(_ context.Context, cmd userusecases.UpdateUserRoleCommand) (*userusecases.UpdateUserRoleResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockAssignUserTeamUC struct {
	result  *userusecases.AssignUserTeamResult
	err     error
	lastCmd userusecases.AssignUserTeamCommand
}

func (m *mockAssignUserTeamUC) Execute(_ context.Context, cmd userusecases.AssignUserTeamCommand) (*userusecases.AssignUserTeamResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockCreateTeamUC struct {
	result *teamusecases.CreateTeamResult
	err    error
}

func (m *mockCreateTeamUC) Execute(_ context.Context, _ teamusecases.CreateTeamCommand) (*teamusecases.CreateTeamResult, error) {
	return m.result, m.err
}

type mockListTeamsUC struct {
	result *teamusecases.ListTeamsResult
	err    error
}

func (m *mockListTeamsUC) Execute(_ context.Context, _ teamusecases.ListTeamsQuery) (*teamusecases.ListTeamsResult, error) {
	return m.result, m.err
}

type mockDeleteTeamUC struct {
	result *teamusecases.DeleteTeamResult
	err    error
}

func (m *mockDeleteTeamUC) Execute(_ context.Context, _ teamusecases.DeleteTeamCommand) (*teamusecases.DeleteTeamResult, error) {
	return m.result, m.err
}

type adminTestDeps struct {
	listUsersUC      userusecases.ListUsersExecutor
	updateUserRoleUC userusecases.UpdateUserRoleExecutor
	assignUserTeamUC userusecases.AssignUserTeamExecutor
	createTeamUC     teamusecases.CreateTeamExecutor
	listTeamsUC      teamusecases.ListTeamsExecutor
	deleteTeamUC     teamusecases.DeleteTeamExecutor
}

func newTestAdminHandler(deps adminTestDeps) *AdminHandler {
	return NewAdminHandler(
		deps.listUsersUC,
		deps.updateUserRoleUC,
		deps.assignUserTeamUC,
		deps.createTeamUC,
		deps.listTeamsUC,
		deps.deleteTeamUC,
	)
}

func TestAdminHandler_ListUsers_Success(t *testing.T) {
	mockUC := &mockListUsersUC{
		result: &userusecases.ListUsersResult{
			Users: []userdto.UserDTO{
				{ID: 1, Email: "alice@example.com", Name: "Alice", Role: "customer", CreatedAt: time.Now().UTC()},
				{ID: 2, Email: "agent@autocrm.com", Name: "Agent", Role: "staff", CreatedAt: time.Now().UTC()},
			},
		},
	}
	handler := newTestAdminHandler(adminTestDeps{listUsersUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/users", nil)
	testutil.SetAuthContext(c, 3, "admin@autocrm.com", constants.RoleAdmin)

	handler.ListUsers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "agent@autocrm.com")
	assert.Contains(t, w.Body.String(), "\"total\":2")
}

func TestAdminHandler_UpdateUserRole_Success(t *testing.T) {
	mockUC := &mockUpdateUserRoleUC{
		result: &userusecases.UpdateUserRoleResult{UserID: 1, Role: "staff"},
	}
	handler := newTestAdminHandler(adminTestDeps{updateUserRoleUC: mockUC})

	reqBody := UpdateUserRoleRequest{Role: "staff"}
	c, w := testutil.NewTestContext(http.MethodPut, "/admin/users/1/role", reqBody)
	testutil.SetAuthContext(c, 3, "admin@autocrm.com", constants.RoleAdmin)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateUserRole(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.lastCmd.UserID)
	assert.Equal(t, "staff", mockUC.lastCmd.Role)
}

func TestAdminHandler_UpdateUserRole_InvalidID(t *testing.T) {
	handler := newTestAdminHandler(adminTestDeps{})

	reqBody := UpdateUserRoleRequest{Role: "staff"}
	c, w := testutil.NewTestContext(http.MethodPut, "/admin/users/abc/role", reqBody)
	testutil.SetAuthContext(c, 3, "admin@autocrm.com", constants.RoleAdmin)
	testutil.SetURLParam(c, "id", "abc")

	handler.UpdateUserRole(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_AssignUserTeam_ClearsWithNull(t *testing.T) {
	mockUC := &mockAssignUserTeamUC{
		result: &userusecases.AssignUserTeamResult{UserID: 1},
	}
	handler := newTestAdminHandler(adminTestDeps{assignUserTeamUC: mockUC})

	reqBody := map[string]interface{}{"team_id": nil}
	c, w := testutil.NewTestContext(http.MethodPut, "/admin/users/1/team", reqBody)
	testutil.SetAuthContext(c, 3, "admin@autocrm.com", constants.RoleAdmin)
	testutil.SetURLParam(c, "id", "1")

	handler.AssignUserTeam(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.lastCmd.UserID)
	assert.Nil(t, mockUC.lastCmd.TeamID)
}

func TestAdminHandler_CreateTeam_Success(t *testing.T) {
	mockUC := &mockCreateTeamUC{
		result: &teamusecases.CreateTeamResult{TeamID: 1, Name: "Billing", CreatedAt: time.Now().UTC()},
	}
	handler := newTestAdminHandler(adminTestDeps{createTeamUC: mockUC})

	reqBody := CreateTeamRequest{Name: "Billing", Description: "Billing questions"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/teams", reqBody)
	testutil.SetAuthContext(c, 3, "admin@autocrm.com", constants.RoleAdmin)

	handler.CreateTeam(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdminHandler_CreateTeam_DuplicateName(t *testing.T) {
	mockUC := &mockCreateTeamUC{
		err: errors.NewConflictError("team name already exists"),
	}
	handler := newTestAdminHandler(adminTestDeps{createTeamUC: mockUC})

	reqBody := CreateTeamRequest{Name: "Billing"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/teams", reqBody)
	testutil.SetAuthContext(c, 3, "admin@autocrm.com", constants.RoleAdmin)

	handler.CreateTeam(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminHandler_DeleteTeam_Success(t *testing.T) {
	mockUC := &mockDeleteTeamUC{
		result: &teamusecases.DeleteTeamResult{TeamID: 1},
	}
	handler := newTestAdminHandler(adminTestDeps{deleteTeamUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/admin/teams/1", nil)
	testutil.SetAuthContext(c, 3, "admin@autocrm.com", constants.RoleAdmin)
	testutil.SetURLParam(c, "id", "1")

	handler.DeleteTeam(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}
