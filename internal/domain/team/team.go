package team

import (
	"fmt"
	"strings"
	"time"
)

type Team struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
}

func NewTeam(name, description string) (*Team, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("team name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("team name exceeds maximum length of 100 characters")
	}

	return &Team{
		name:        name,
		description: description,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructTeam(id uint, name, description string, createdAt time.Time) (*Team, error) {
	if id == 0 {
		return nil, fmt.Errorf("team ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("team name is required")
	}

	return &Team{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (t *Team) ID() uint {
	return t.id
}

func (t *Team) Name() string {
	return t.name
}

func (t *Team) Description() string {
	return t.description
}

func (t *Team) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Team) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("team ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("team ID cannot be zero")
	}
	t.id = id
	return nil
}
