package usecases

import (
	"context"

	"autocrm/internal/application/user/dto"
	"autocrm/internal/domain/user"
	"autocrm/internal/shared/logger"
)

type ListUsersQuery struct{}

type ListUsersResult struct {
	Users []dto.UserDTO
}

type ListUsersUseCase struct {
	userRepo user.Repository
	roleRepo user.UserRoleRepository
	logger   logger.Interface
}

func NewListUsersUseCase(
	userRepo user.Repository,
	roleRepo user.UserRoleRepository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, _ ListUsersQuery) (*ListUsersResult, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	userIDs := make([]uint, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.ID())
	}

	roles, err := uc.roleRepo.ListByUserIDs(ctx, userIDs)
	if err != nil {
		uc.logger.Errorw("failed to list user roles", "error", err)
		return nil, err
	}

	rolesByUser := make(map[uint]*user.UserRole, len(roles))
	for _, r := range roles {
		rolesByUser[r.UserID()] = r
	}

	items := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		items = append(items, *dto.ToUserDTO(u, rolesByUser[u.ID()]))
	}

	return &ListUsersResult{Users: items}, nil
}
