package usecases

import "context"

type GenerateDraftExecutor interface {
	Execute(ctx context.Context, cmd GenerateDraftCommand) (*GenerateDraftResult, error)
}
