package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocrm/internal/domain/team"
	"autocrm/internal/domain/user"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/errors"
)

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("create and fetch by email case-insensitively", func(t *testing.T) {
		u, err := user.NewUser("Frank@Example.com", "Frank", "hashed-secret")
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, u))
		assert.NotZero(t, u.ID())

		found, err := repo.GetByEmail(ctx, "FRANK@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "frank@example.com", found.Email())
		assert.Equal(t, "Frank", found.Name())

		exists, err := repo.ExistsByEmail(ctx, "frank@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("duplicate email is a duplicate error", func(t *testing.T) {
		u1, err := user.NewUser("dup@example.com", "", "hash")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, u1))

		u2, err := user.NewUser("dup@example.com", "", "hash")
		require.NoError(t, err)
		err = repo.Create(ctx, u2)
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})

	t.Run("unknown email returns nil without error", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRoleRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRoleRepository(db)
	ctx := context.Background()

	t.Run("count starts at zero", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("create, fetch and update role", func(t *testing.T) {
		role, err := user.NewUserRole(1, authorization.RoleCustomer)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, role))

		found, err := repo.GetByUserID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, authorization.RoleCustomer, found.Role())

		require.NoError(t, found.ChangeRole(authorization.RoleStaff))
		require.NoError(t, repo.Update(ctx, found))

		updated, err := repo.GetByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, authorization.RoleStaff, updated.Role())
	})

	t.Run("second role for the same user is a duplicate error", func(t *testing.T) {
		role, err := user.NewUserRole(1, authorization.RoleAdmin)
		require.NoError(t, err)
		err = repo.Create(ctx, role)
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})

	t.Run("list by user ids", func(t *testing.T) {
		role, err := user.NewUserRole(2, authorization.RoleAdmin)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, role))

		roles, err := repo.ListByUserIDs(ctx, []uint{1, 2, 3})
		require.NoError(t, err)
		assert.Len(t, roles, 2)

		empty, err := repo.ListByUserIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestTeamRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	t.Run("create, list and delete", func(t *testing.T) {
		tm, err := team.NewTeam("Billing", "Handles invoices")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, tm))
		assert.NotZero(t, tm.ID())

		found, err := repo.GetByID(ctx, tm.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Billing", found.Name())

		teams, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, teams, 1)

		require.NoError(t, repo.Delete(ctx, tm.ID()))
		gone, err := repo.GetByID(ctx, tm.ID())
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("duplicate name is a duplicate error", func(t *testing.T) {
		t1, err := team.NewTeam("Support", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, t1))

		t2, err := team.NewTeam("Support", "")
		require.NoError(t, err)
		err = repo.Create(ctx, t2)
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})
}
