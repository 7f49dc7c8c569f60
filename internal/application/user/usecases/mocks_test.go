package usecases

import (
	"context"

	"autocrm/internal/domain/team"
	"autocrm/internal/domain/user"
	"autocrm/internal/shared/authorization"
	"autocrm/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context) ([]*user.User, error)
	UpdateFunc        func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

type mockUserRoleRepository struct {
	CreateFunc        func(ctx context.Context, role *user.UserRole) error
	GetByUserIDFunc   func(ctx context.Context, userID uint) (*user.UserRole, error)
	UpdateFunc        func(ctx context.Context, role *user.UserRole) error
	CountFunc         func(ctx context.Context) (int64, error)
	ListByUserIDsFunc func(ctx context.Context, userIDs []uint) ([]*user.UserRole, error)
}

func (m *mockUserRoleRepository) Create(ctx context.Context, role *user.UserRole) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, role)
	}
	return nil
}

func (m *mockUserRoleRepository) GetByUserID(ctx context.Context, userID uint) (*user.UserRole, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRoleRepository) Update(ctx context.Context, role *user.UserRole) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, role)
	}
	return nil
}

func (m *mockUserRoleRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockUserRoleRepository) ListByUserIDs(ctx context.Context, userIDs []uint) ([]*user.UserRole, error) {
	if m.ListByUserIDsFunc != nil {
		return m.ListByUserIDsFunc(ctx, userIDs)
	}
	return nil, nil
}

type mockTeamRepository struct {
	CreateFunc  func(ctx context.Context, t *team.Team) error
	GetByIDFunc func(ctx context.Context, id uint) (*team.Team, error)
	ListFunc    func(ctx context.Context) ([]*team.Team, error)
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockTeamRepository) Create(ctx context.Context, t *team.Team) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTeamRepository) GetByID(ctx context.Context, id uint) (*team.Team, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTeamRepository) List(ctx context.Context) ([]*team.Team, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTeamRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(hashedPassword, password string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return nil
}

type mockJWTService struct {
	GenerateFunc func(userID uint, email string, role authorization.UserRole) (*TokenPair, error)
}

func (m *mockJWTService) Generate(userID uint, email string, role authorization.UserRole) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

type mockResolveRole struct {
	ExecuteFunc func(ctx context.Context, cmd ResolveRoleCommand) (*ResolveRoleResult, error)
}

func (m *mockResolveRole) Execute(ctx context.Context, cmd ResolveRoleCommand) (*ResolveRoleResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &ResolveRoleResult{Role: authorization.RoleCustomer}, nil
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                   {}
func (mockLogger) Info(msg string, args ...any)                    {}
func (mockLogger) Warn(msg string, args ...any)                    {}
func (mockLogger) Error(msg string, args ...any)                   {}
func (mockLogger) Fatal(msg string, args ...any)                   {}
func (m mockLogger) With(args ...any) logger.Interface             { return m }
func (m mockLogger) Named(name string) logger.Interface            { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
