package mappers

import (
	"autocrm/internal/domain/team"
	"autocrm/internal/infrastructure/persistence/models"
)

// TeamMapper handles the conversion between team domain entities and persistence models.
type TeamMapper interface {
	ToModel(t *team.Team) *models.TeamModel
	ToDomain(model *models.TeamModel) (*team.Team, error)
}

type TeamMapperImpl struct{}

func NewTeamMapper() TeamMapper {
	return &TeamMapperImpl{}
}

func (m *TeamMapperImpl) ToModel(t *team.Team) *models.TeamModel {
	return &models.TeamModel{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
	}
}

func (m *TeamMapperImpl) ToDomain(model *models.TeamModel) (*team.Team, error) {
	return team.ReconstructTeam(
		model.ID,
		model.Name,
		model.Description,
		millisToTime(model.CreatedAt),
	)
}
