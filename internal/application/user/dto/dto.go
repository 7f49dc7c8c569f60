package dto

import (
	"time"

	"autocrm/internal/domain/user"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	TeamID    *uint     `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User, role *user.UserRole) *UserDTO {
	if u == nil {
		return nil
	}

	d := &UserDTO{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		CreatedAt: u.CreatedAt(),
	}

	if role != nil {
		d.Role = string(role.Role())
		d.TeamID = role.TeamID()
	}

	return d
}
