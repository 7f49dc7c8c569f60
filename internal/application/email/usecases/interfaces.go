package usecases

import "context"

type SendTicketEmailExecutor interface {
	Execute(ctx context.Context, cmd SendTicketEmailCommand) (*SendTicketEmailResult, error)
}
