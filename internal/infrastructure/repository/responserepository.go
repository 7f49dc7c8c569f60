package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"autocrm/internal/domain/ticket"
	"autocrm/internal/infrastructure/persistence/mappers"
	"autocrm/internal/infrastructure/persistence/models"
	db "autocrm/internal/shared/db"
)

type ResponseRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ResponseRepository) Save(ctx context.Context, response *ticket.Response) error {
	model := r.mapper.ResponseToModel(response)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}

	if err := response.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ResponseRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Response, error) {
	var responseModels []models.TicketResponseModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&responseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find responses: %w", err)
	}

	responses := make([]*ticket.Response, len(responseModels))
	for i, model := range responseModels {
		resp, err := r.mapper.ResponseToDomain(&model)
		if err != nil {
			return nil, err
		}
		responses[i] = resp
	}

	return responses, nil
}
