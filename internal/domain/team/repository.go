package team

import "context"

type Repository interface {
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, id uint) (*Team, error)
	List(ctx context.Context) ([]*Team, error)
	Delete(ctx context.Context, id uint) error
}
