package usecases

import (
	"context"

	"autocrm/internal/application/user/dto"
	"autocrm/internal/domain/user"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID uint
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	roleRepo user.UserRoleRepository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(
	userRepo user.Repository,
	roleRepo user.UserRoleRepository,
	logger logger.Interface,
) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", query.UserID, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	role, err := uc.roleRepo.GetByUserID(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to get user role", "user_id", u.ID(), "error", err)
		return nil, err
	}

	return dto.ToUserDTO(u, role), nil
}
