package usecases

import (
	"context"

	"autocrm/internal/domain/team"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type DeleteTeamCommand struct {
	TeamID uint
}

type DeleteTeamResult struct {
	TeamID uint
}

type DeleteTeamUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewDeleteTeamUseCase(
	teamRepo team.Repository,
	logger logger.Interface,
) *DeleteTeamUseCase {
	return &DeleteTeamUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *DeleteTeamUseCase) Execute(ctx context.Context, cmd DeleteTeamCommand) (*DeleteTeamResult, error) {
	if cmd.TeamID == 0 {
		return nil, errors.NewValidationError("team ID is required")
	}

	existing, err := uc.teamRepo.GetByID(ctx, cmd.TeamID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("team not found")
	}

	if err := uc.teamRepo.Delete(ctx, cmd.TeamID); err != nil {
		uc.logger.Errorw("failed to delete team", "team_id", cmd.TeamID, "error", err)
		return nil, err
	}

	uc.logger.Infow("team deleted", "team_id", cmd.TeamID)

	return &DeleteTeamResult{TeamID: cmd.TeamID}, nil
}
