package usecases

import (
	"context"
	"strings"
	"time"

	"autocrm/internal/domain/user"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/constants"
	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
)

type ResolveRoleCommand struct {
	UserID        uint
	Email         string
	RequestedRole string
}

type ResolveRoleResult struct {
	Role   authorization.UserRole
	TeamID *uint
}

// ResolveRoleUseCase returns a user's role, creating the row on first
// contact. Default resolution order: requested role, staff for support
// domain addresses, customer otherwise. The very first user in the system
// becomes admin regardless.
type ResolveRoleUseCase struct {
	roleRepo   user.UserRoleRepository
	logger     logger.Interface
	retryDelay time.Duration
}

func NewResolveRoleUseCase(
	roleRepo user.UserRoleRepository,
	logger logger.Interface,
) *ResolveRoleUseCase {
	return &ResolveRoleUseCase{
		roleRepo:   roleRepo,
		logger:     logger,
		retryDelay: time.Second,
	}
}

func (uc *ResolveRoleUseCase) Execute(ctx context.Context, cmd ResolveRoleCommand) (*ResolveRoleResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.roleRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to look up user role", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if existing != nil {
		return &ResolveRoleResult{Role: existing.Role(), TeamID: existing.TeamID()}, nil
	}

	role := uc.defaultRole(cmd.Email, cmd.RequestedRole)

	count, err := uc.roleRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count user roles", "error", err)
		return nil, err
	}
	if count == 0 {
		role = authorization.RoleAdmin
	}

	newRole, err := user.NewUserRole(cmd.UserID, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var lastErr error
	for attempt := 1; attempt <= constants.RoleCreateMaxAttempts; attempt++ {
		lastErr = uc.roleRepo.Create(ctx, newRole)
		if lastErr == nil {
			uc.logger.Infow("user role created", "user_id", cmd.UserID, "role", role, "attempt", attempt)
			return &ResolveRoleResult{Role: role}, nil
		}

		// A concurrent resolver may have won the unique index race.
		if errors.IsDuplicateError(lastErr) {
			existing, err := uc.roleRepo.GetByUserID(ctx, cmd.UserID)
			if err == nil && existing != nil {
				return &ResolveRoleResult{Role: existing.Role(), TeamID: existing.TeamID()}, nil
			}
		}

		uc.logger.Warnw("user role insert failed", "user_id", cmd.UserID, "attempt", attempt, "error", lastErr)

		if attempt < constants.RoleCreateMaxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(uc.retryDelay):
			}
		}
	}

	uc.logger.Errorw("user role insert exhausted retries", "user_id", cmd.UserID, "error", lastErr)
	return nil, errors.NewInternalError("failed to assign user role")
}

func (uc *ResolveRoleUseCase) defaultRole(email, requestedRole string) authorization.UserRole {
	if requestedRole != "" {
		requested := authorization.UserRole(requestedRole)
		if requested.IsValid() {
			return requested
		}
	}

	if strings.HasSuffix(strings.ToLower(email), constants.SupportEmailDomain) {
		return authorization.RoleStaff
	}

	return authorization.RoleCustomer
}
