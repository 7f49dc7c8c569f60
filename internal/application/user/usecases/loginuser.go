package usecases

import (
	"context"
	"strings"

	"autocrm/internal/domain/user"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserResult struct {
	UserID       uint
	Email        string
	Name         string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUserUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	jwtService     JWTService
	resolveRole    ResolveRoleExecutor
	logger         logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	jwtService JWTService,
	resolveRole ResolveRoleExecutor,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtService:     jwtService,
		resolveRole:    resolveRole,
		logger:         logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	// Generic message, the caller must not learn whether the email exists.
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.passwordHasher.Verify(existingUser.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	roleResult, err := uc.resolveRole.Execute(ctx, ResolveRoleCommand{
		UserID: existingUser.ID(),
		Email:  existingUser.Email(),
	})
	if err != nil {
		uc.logger.Errorw("failed to resolve role at login", "user_id", existingUser.ID(), "error", err)
		return nil, err
	}

	tokens, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Email(), roleResult.Role)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", existingUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID(), "role", roleResult.Role)

	return &LoginUserResult{
		UserID:       existingUser.ID(),
		Email:        existingUser.Email(),
		Name:         existingUser.Name(),
		Role:         string(roleResult.Role),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
