package mappers

import (
	"autocrm/internal/domain/user"
	"autocrm/internal/infrastructure/persistence/models"
	"autocrm/internal/shared/authorization"
)

// UserMapper handles the conversion between user domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	RoleToModel(ur *user.UserRole) *models.UserRoleModel
	RoleToDomain(model *models.UserRoleModel) (*user.UserRole, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) RoleToModel(ur *user.UserRole) *models.UserRoleModel {
	return &models.UserRoleModel{
		ID:        ur.ID(),
		UserID:    ur.UserID(),
		Role:      ur.Role().String(),
		TeamID:    ur.TeamID(),
		CreatedAt: ur.CreatedAt().UnixMilli(),
		UpdatedAt: ur.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) RoleToDomain(model *models.UserRoleModel) (*user.UserRole, error) {
	role := authorization.ParseUserRole(model.Role)

	return user.ReconstructUserRole(
		model.ID,
		model.UserID,
		role,
		model.TeamID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
