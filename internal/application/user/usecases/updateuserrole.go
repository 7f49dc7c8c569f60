package usecases

import (
	"context"

	"autocrm/internal/domain/user"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type UpdateUserRoleCommand struct {
	UserID uint
	Role   string
}

type UpdateUserRoleResult struct {
	UserID uint
	Role   string
}

type UpdateUserRoleUseCase struct {
	roleRepo user.UserRoleRepository
	logger   logger.Interface
}

func NewUpdateUserRoleUseCase(
	roleRepo user.UserRoleRepository,
	logger logger.Interface,
) *UpdateUserRoleUseCase {
	return &UpdateUserRoleUseCase{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserRoleUseCase) Execute(ctx context.Context, cmd UpdateUserRoleCommand) (*UpdateUserRoleResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}

	existing, err := uc.roleRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user role", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user role not found")
	}

	if err := existing.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.roleRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user role", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user role updated", "user_id", cmd.UserID, "role", role)

	return &UpdateUserRoleResult{
		UserID: cmd.UserID,
		Role:   string(role),
	}, nil
}
