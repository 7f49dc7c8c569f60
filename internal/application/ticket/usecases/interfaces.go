package usecases

import (
	"context"

	"autocrm/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type BulkUpdateTicketsExecutor interface {
	Execute(ctx context.Context, cmd BulkUpdateTicketsCommand) (*BulkUpdateTicketsResult, error)
}

type RateTicketExecutor interface {
	Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error)
}

type AddResponseExecutor interface {
	Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error)
}

type ListResponsesExecutor interface {
	Execute(ctx context.Context, query ListResponsesQuery) (*ListResponsesResult, error)
}

type ExportTicketsExecutor interface {
	Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.StatsDTO, error)
}

type UploadAttachmentsExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*UploadAttachmentsResult, error)
}

type DeleteAttachmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAttachmentCommand) (*DeleteAttachmentResult, error)
}
