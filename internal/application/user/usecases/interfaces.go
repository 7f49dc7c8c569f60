package usecases

import (
	"context"

	"autocrm/internal/application/user/dto"
	"autocrm/internal/shared/authorization"
)

// PasswordHasher abstracts the bcrypt implementation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService interface {
	Generate(userID uint, email string, role authorization.UserRole) (*TokenPair, error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type LoginUserExecutor interface {
	Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.UserDTO, error)
}

type ResolveRoleExecutor interface {
	Execute(ctx context.Context, cmd ResolveRoleCommand) (*ResolveRoleResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type UpdateUserRoleExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserRoleCommand) (*UpdateUserRoleResult, error)
}

type AssignUserTeamExecutor interface {
	Execute(ctx context.Context, cmd AssignUserTeamCommand) (*AssignUserTeamResult, error)
}
