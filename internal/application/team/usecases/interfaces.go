package usecases

import "context"

type CreateTeamExecutor interface {
	Execute(ctx context.Context, cmd CreateTeamCommand) (*CreateTeamResult, error)
}

type ListTeamsExecutor interface {
	Execute(ctx context.Context, query ListTeamsQuery) (*ListTeamsResult, error)
}

type DeleteTeamExecutor interface {
	Execute(ctx context.Context, cmd DeleteTeamCommand) (*DeleteTeamResult, error)
}
