package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"autocrm/internal/domain/team"
	"autocrm/internal/infrastructure/persistence/mappers"
	"autocrm/internal/infrastructure/persistence/models"
	db "autocrm/internal/shared/db"
)

type TeamRepository struct {
	db     *gorm.DB
	mapper mappers.TeamMapper
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{
		db:     db,
		mapper: mappers.NewTeamMapper(),
	}
}

func (r *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uint) (*team.Team, error) {
	var model models.TeamModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TeamRepository) List(ctx context.Context) ([]*team.Team, error) {
	var teamModels []models.TeamModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("name ASC").Find(&teamModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]*team.Team, len(teamModels))
	for i, model := range teamModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		teams[i] = t
	}

	return teams, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TeamModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete team: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("team not found")
	}
	return nil
}
