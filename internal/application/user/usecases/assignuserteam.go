package usecases

import (
	"context"

	"autocrm/internal/domain/team"
	"autocrm/internal/domain/user"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

// AssignUserTeamCommand moves a user into a team. A nil TeamID clears the
// assignment.
type AssignUserTeamCommand struct {
	UserID uint
	TeamID *uint
}

type AssignUserTeamResult struct {
	UserID uint
	TeamID *uint
}

type AssignUserTeamUseCase struct {
	roleRepo user.UserRoleRepository
	teamRepo team.Repository
	logger   logger.Interface
}

func NewAssignUserTeamUseCase(
	roleRepo user.UserRoleRepository,
	teamRepo team.Repository,
	logger logger.Interface,
) *AssignUserTeamUseCase {
	return &AssignUserTeamUseCase{
		roleRepo: roleRepo,
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *AssignUserTeamUseCase) Execute(ctx context.Context, cmd AssignUserTeamCommand) (*AssignUserTeamResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	role, err := uc.roleRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user role", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if role == nil {
		return nil, errors.NewNotFoundError("user role not found")
	}

	if cmd.TeamID == nil {
		role.ClearTeam()
	} else {
		existing, err := uc.teamRepo.GetByID(ctx, *cmd.TeamID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, errors.NewNotFoundError("team not found")
		}
		if err := role.AssignTeam(*cmd.TeamID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.roleRepo.Update(ctx, role); err != nil {
		uc.logger.Errorw("failed to update team assignment", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user team assignment updated", "user_id", cmd.UserID)

	return &AssignUserTeamResult{
		UserID: cmd.UserID,
		TeamID: role.TeamID(),
	}, nil
}
