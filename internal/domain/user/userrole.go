package user

import (
	"fmt"
	"time"

	"autocrm/internal/shared/authorization"
)

// UserRole holds a user's support role. Exactly one row exists per user;
// the role resolver creates it on first login and only admins change it.
type UserRole struct {
	id        uint
	userID    uint
	role      authorization.UserRole
	teamID    *uint
	createdAt time.Time
	updatedAt time.Time
}

func NewUserRole(userID uint, role authorization.UserRole) (*UserRole, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &UserRole{
		userID:    userID,
		role:      role,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUserRole(id, userID uint, role authorization.UserRole, teamID *uint, createdAt, updatedAt time.Time) (*UserRole, error) {
	if id == 0 {
		return nil, fmt.Errorf("user role ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &UserRole{
		id:        id,
		userID:    userID,
		role:      role,
		teamID:    teamID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (ur *UserRole) ID() uint {
	return ur.id
}

func (ur *UserRole) UserID() uint {
	return ur.userID
}

func (ur *UserRole) Role() authorization.UserRole {
	return ur.role
}

func (ur *UserRole) TeamID() *uint {
	return ur.teamID
}

func (ur *UserRole) CreatedAt() time.Time {
	return ur.createdAt
}

func (ur *UserRole) UpdatedAt() time.Time {
	return ur.updatedAt
}

func (ur *UserRole) SetID(id uint) error {
	if ur.id != 0 {
		return fmt.Errorf("user role ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user role ID cannot be zero")
	}
	ur.id = id
	return nil
}

func (ur *UserRole) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	ur.role = role
	ur.updatedAt = time.Now().UTC()
	return nil
}

func (ur *UserRole) AssignTeam(teamID uint) error {
	if teamID == 0 {
		return fmt.Errorf("team ID cannot be zero")
	}
	ur.teamID = &teamID
	ur.updatedAt = time.Now().UTC()
	return nil
}

func (ur *UserRole) ClearTeam() {
	ur.teamID = nil
	ur.updatedAt = time.Now().UTC()
}
