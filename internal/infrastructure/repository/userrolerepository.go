package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"autocrm/internal/domain/user"
	"autocrm/internal/infrastructure/persistence/mappers"
	"autocrm/internal/infrastructure/persistence/models"
	db "autocrm/internal/shared/db"
)

type UserRoleRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRoleRepository(db *gorm.DB) *UserRoleRepository {
	return &UserRoleRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRoleRepository) Create(ctx context.Context, role *user.UserRole) error {
	model := r.mapper.RoleToModel(role)
	tx := db.GetTxFromContext(ctx, r.db)

	// The unique index on user_id makes concurrent inserts for the same user
	// fail with a duplicate error; callers handle that race.
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user role: %w", err)
	}

	if err := role.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *UserRoleRepository) GetByUserID(ctx context.Context, userID uint) (*user.UserRole, error) {
	var model models.UserRoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user role: %w", err)
	}

	return r.mapper.RoleToDomain(&model)
}

func (r *UserRoleRepository) Update(ctx context.Context, role *user.UserRole) error {
	model := r.mapper.RoleToModel(role)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserRoleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"role":    model.Role,
			"team_id": model.TeamID,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user role: %w", result.Error)
	}

	return nil
}

func (r *UserRoleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserRoleModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count user roles: %w", err)
	}

	return count, nil
}

func (r *UserRoleRepository) ListByUserIDs(ctx context.Context, userIDs []uint) ([]*user.UserRole, error) {
	if len(userIDs) == 0 {
		return []*user.UserRole{}, nil
	}

	var roleModels []models.UserRoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id IN ?", userIDs).
		Find(&roleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}

	roles := make([]*user.UserRole, len(roleModels))
	for i, model := range roleModels {
		role, err := r.mapper.RoleToDomain(&model)
		if err != nil {
			return nil, err
		}
		roles[i] = role
	}

	return roles, nil
}
