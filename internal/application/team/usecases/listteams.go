package usecases

import (
	"context"
	"time"

	"autocrm/internal/domain/team"
	"autocrm/internal/shared/logger"
)

type TeamDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListTeamsQuery struct{}

type ListTeamsResult struct {
	Teams []TeamDTO
}

type ListTeamsUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewListTeamsUseCase(
	teamRepo team.Repository,
	logger logger.Interface,
) *ListTeamsUseCase {
	return &ListTeamsUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *ListTeamsUseCase) Execute(ctx context.Context, _ ListTeamsQuery) (*ListTeamsResult, error) {
	teams, err := uc.teamRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list teams", "error", err)
		return nil, err
	}

	items := make([]TeamDTO, 0, len(teams))
	for _, tm := range teams {
		items = append(items, TeamDTO{
			ID:          tm.ID(),
			Name:        tm.Name(),
			Description: tm.Description(),
			CreatedAt:   tm.CreatedAt(),
		})
	}

	return &ListTeamsResult{Teams: items}, nil
}
