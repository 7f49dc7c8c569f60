package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
}

type UserRoleRepository interface {
	Create(ctx context.Context, role *UserRole) error
	GetByUserID(ctx context.Context, userID uint) (*UserRole, error)
	Update(ctx context.Context, role *UserRole) error
	// Count returns the total number of role rows; zero means no user has
	// ever been assigned a role.
	Count(ctx context.Context) (int64, error)
	ListByUserIDs(ctx context.Context, userIDs []uint) ([]*UserRole, error)
}
