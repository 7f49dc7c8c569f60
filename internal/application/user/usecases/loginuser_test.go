package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocrm/internal/domain/user"
	"autocrm/internal/shared/authorization"
)

func storedUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("jane@example.com", "Jane", "hashed:hunter2hunter2")
	require.NoError(t, err)
	require.NoError(t, u.SetID(10))
	return u
}

func TestLoginUserUseCase_Execute_Success(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "jane@example.com", email)
			return storedUser(t), nil
		},
	}
	hasher := &mockPasswordHasher{
		VerifyFunc: func(hashedPassword, password string) error {
			assert.Equal(t, "hashed:hunter2hunter2", hashedPassword)
			assert.Equal(t, "hunter2hunter2", password)
			return nil
		},
	}
	resolver := &mockResolveRole{
		ExecuteFunc: func(ctx context.Context, cmd ResolveRoleCommand) (*ResolveRoleResult, error) {
			return &ResolveRoleResult{Role: authorization.RoleStaff}, nil
		},
	}

	useCase := NewLoginUserUseCase(userRepo, hasher, &mockJWTService{}, resolver, mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginUserCommand{
		Email:    "Jane@Example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(10), result.UserID)
	assert.Equal(t, "staff", result.Role)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
}

func TestLoginUserUseCase_Execute_GenericErrorForUnknownEmail(t *testing.T) {
	useCase := NewLoginUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockJWTService{}, &mockResolveRole{}, mockLogger{})

	_, err := useCase.Execute(context.Background(), LoginUserCommand{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLoginUserUseCase_Execute_GenericErrorForWrongPassword(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return storedUser(t), nil
		},
	}
	hasher := &mockPasswordHasher{
		VerifyFunc: func(hashedPassword, password string) error {
			return errors.New("mismatch")
		},
	}

	useCase := NewLoginUserUseCase(userRepo, hasher, &mockJWTService{}, &mockResolveRole{}, mockLogger{})
	_, err := useCase.Execute(context.Background(), LoginUserCommand{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLoginUserUseCase_Execute_MissingFields(t *testing.T) {
	useCase := NewLoginUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockJWTService{}, &mockResolveRole{}, mockLogger{})

	_, err := useCase.Execute(context.Background(), LoginUserCommand{})
	require.Error(t, err)
}
