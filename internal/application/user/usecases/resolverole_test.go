package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocrm/internal/domain/user"
	"autocrm/internal/shared/authorization"
)

func newResolver(roleRepo *mockUserRoleRepository) *ResolveRoleUseCase {
	uc := NewResolveRoleUseCase(roleRepo, mockLogger{})
	uc.retryDelay = time.Millisecond
	return uc
}

func existingRole(t *testing.T, userID uint, role authorization.UserRole) *user.UserRole {
	t.Helper()
	ur, err := user.NewUserRole(userID, role)
	require.NoError(t, err)
	require.NoError(t, ur.SetID(userID))
	return ur
}

func TestResolveRoleUseCase_Execute_ExistingRoleWins(t *testing.T) {
	roleRepo := &mockUserRoleRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*user.UserRole, error) {
			return existingRole(t, userID, authorization.RoleStaff), nil
		},
		CreateFunc: func(ctx context.Context, role *user.UserRole) error {
			t.Fatal("create must not be called when a role exists")
			return nil
		},
	}

	result, err := newResolver(roleRepo).Execute(context.Background(), ResolveRoleCommand{
		UserID:        2,
		Email:         "someone@example.com",
		RequestedRole: "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, authorization.RoleStaff, result.Role)
}

func TestResolveRoleUseCase_Execute_DefaultResolution(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		requestedRole string
		existingCount int64
		wantRole      authorization.UserRole
	}{
		{
			name:          "requested role honored",
			email:         "someone@example.com",
			requestedRole: "staff",
			existingCount: 3,
			wantRole:      authorization.RoleStaff,
		},
		{
			name:          "support domain becomes staff",
			email:         "agent@autocrm.com",
			existingCount: 3,
			wantRole:      authorization.RoleStaff,
		},
		{
			name:          "support domain case insensitive",
			email:         "Agent@AutoCRM.com",
			existingCount: 3,
			wantRole:      authorization.RoleStaff,
		},
		{
			name:          "everyone else is customer",
			email:         "someone@example.com",
			existingCount: 3,
			wantRole:      authorization.RoleCustomer,
		},
		{
			name:          "invalid requested role falls through",
			email:         "someone@example.com",
			requestedRole: "superuser",
			existingCount: 3,
			wantRole:      authorization.RoleCustomer,
		},
		{
			name:          "first user ever is admin",
			email:         "someone@example.com",
			existingCount: 0,
			wantRole:      authorization.RoleAdmin,
		},
		{
			name:          "first user overrides requested role",
			email:         "someone@example.com",
			requestedRole: "customer",
			existingCount: 0,
			wantRole:      authorization.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *user.UserRole
			roleRepo := &mockUserRoleRepository{
				CountFunc: func(ctx context.Context) (int64, error) {
					return tt.existingCount, nil
				},
				CreateFunc: func(ctx context.Context, role *user.UserRole) error {
					created = role
					return nil
				},
			}

			result, err := newResolver(roleRepo).Execute(context.Background(), ResolveRoleCommand{
				UserID:        5,
				Email:         tt.email,
				RequestedRole: tt.requestedRole,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, result.Role)
			require.NotNil(t, created)
			assert.Equal(t, tt.wantRole, created.Role())
		})
	}
}

func TestResolveRoleUseCase_Execute_RetriesThenSucceeds(t *testing.T) {
	attempts := 0
	roleRepo := &mockUserRoleRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 1, nil },
		CreateFunc: func(ctx context.Context, role *user.UserRole) error {
			attempts++
			if attempts < 3 {
				return errors.New("deadlock found")
			}
			return nil
		},
	}

	result, err := newResolver(roleRepo).Execute(context.Background(), ResolveRoleCommand{
		UserID: 5,
		Email:  "someone@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, authorization.RoleCustomer, result.Role)
	assert.Equal(t, 3, attempts)
}

func TestResolveRoleUseCase_Execute_RetriesExhausted(t *testing.T) {
	attempts := 0
	roleRepo := &mockUserRoleRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 1, nil },
		CreateFunc: func(ctx context.Context, role *user.UserRole) error {
			attempts++
			return errors.New("deadlock found")
		},
	}

	result, err := newResolver(roleRepo).Execute(context.Background(), ResolveRoleCommand{
		UserID: 5,
		Email:  "someone@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 3, attempts)
}

func TestResolveRoleUseCase_Execute_DuplicateRaceReturnsWinner(t *testing.T) {
	calls := 0
	roleRepo := &mockUserRoleRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 1, nil },
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*user.UserRole, error) {
			calls++
			// First lookup misses, second (after the duplicate error) hits.
			if calls == 1 {
				return nil, nil
			}
			return existingRole(t, userID, authorization.RoleCustomer), nil
		},
		CreateFunc: func(ctx context.Context, role *user.UserRole) error {
			return errors.New("Duplicate entry '5' for key 'user_roles.idx_user_id'")
		},
	}

	result, err := newResolver(roleRepo).Execute(context.Background(), ResolveRoleCommand{
		UserID: 5,
		Email:  "someone@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, authorization.RoleCustomer, result.Role)
}
