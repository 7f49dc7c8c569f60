package usecases

import (
	"context"
	"time"

	"autocrm/internal/domain/team"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type CreateTeamCommand struct {
	Name        string
	Description string
}

type CreateTeamResult struct {
	TeamID    uint
	Name      string
	CreatedAt time.Time
}

type CreateTeamUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewCreateTeamUseCase(
	teamRepo team.Repository,
	logger logger.Interface,
) *CreateTeamUseCase {
	return &CreateTeamUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *CreateTeamUseCase) Execute(ctx context.Context, cmd CreateTeamCommand) (*CreateTeamResult, error) {
	newTeam, err := team.NewTeam(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.teamRepo.Create(ctx, newTeam); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a team with this name already exists")
		}
		uc.logger.Errorw("failed to create team", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("team created", "team_id", newTeam.ID(), "name", newTeam.Name())

	return &CreateTeamResult{
		TeamID:    newTeam.ID(),
		Name:      newTeam.Name(),
		CreatedAt: newTeam.CreatedAt(),
	}, nil
}
