package usecases

import (
	"context"

	"autocrm/internal/domain/user"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type RegisterUserCommand struct {
	Email         string
	Password      string
	Name          string
	RequestedRole string
}

type RegisterUserResult struct {
	UserID       uint
	Email        string
	Name         string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RegisterUserUseCase struct {
	userRepo       user.Repository
	roleRepo       user.UserRoleRepository
	passwordHasher PasswordHasher
	jwtService     JWTService
	resolveRole    ResolveRoleExecutor
	logger         logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	roleRepo user.UserRoleRepository,
	passwordHasher PasswordHasher,
	jwtService JWTService,
	resolveRole ResolveRoleExecutor,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		passwordHasher: passwordHasher,
		jwtService:     jwtService,
		resolveRole:    resolveRole,
		logger:         logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if err := uc.validateCommand(ctx, cmd); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check existing email", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Email, cmd.Name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	roleResult, err := uc.resolveRole.Execute(ctx, ResolveRoleCommand{
		UserID:        newUser.ID(),
		Email:         newUser.Email(),
		RequestedRole: cmd.RequestedRole,
	})
	if err != nil {
		uc.logger.Errorw("failed to resolve role for new user", "user_id", newUser.ID(), "error", err)
		return nil, err
	}

	tokens, err := uc.jwtService.Generate(newUser.ID(), newUser.Email(), roleResult.Role)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", newUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", roleResult.Role)

	return &RegisterUserResult{
		UserID:       newUser.ID(),
		Email:        newUser.Email(),
		Name:         newUser.Name(),
		Role:         string(roleResult.Role),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

func (uc *RegisterUserUseCase) validateCommand(ctx context.Context, cmd RegisterUserCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	// Privileged roles cannot be self-assigned once the system has users.
	requested := authorization.UserRole(cmd.RequestedRole)
	if requested == authorization.RoleAdmin || requested == authorization.RoleStaff {
		count, err := uc.roleRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.NewForbiddenError("privileged roles cannot be requested at registration")
		}
	}

	return nil
}
