package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"autocrm/internal/domain/ticket"
	vo "autocrm/internal/domain/ticket/valueobjects"
	"autocrm/internal/infrastructure/persistence/mappers"
	"autocrm/internal/infrastructure/persistence/models"
	"autocrm/internal/shared/biztime"
	db "autocrm/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// An explicit column map carries nullable fields through; Updates with a
	// struct would skip zero values and never clear or set them.
	updates := map[string]interface{}{
		"title":          model.Title,
		"description":    model.Description,
		"status":         model.Status,
		"priority":       model.Priority,
		"customer_email": model.CustomerEmail,
		"tags":           model.Tags,
		"internal_notes": model.InternalNotes,
		"custom_fields":  model.CustomFields,
		"rating":         model.Rating,
		"rating_comment": model.RatingComment,
		"rated_at":       model.RatedAt,
		"resolved_at":    model.ResolvedAt,
		"updated_at":     biztime.NowUTC().UnixMilli(),
	}

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}

	// Responses and attachments are owned by the ticket and go with it.
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketResponseModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket responses: %w", err)
	}
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketAttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket attachments: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyTicketFilter(tx.Model(&models.TicketModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) BulkUpdateStatus(
	ctx context.Context,
	ticketIDs []uint,
	status vo.TicketStatus,
	resolvedAt *time.Time,
) error {
	tx := db.GetTxFromContext(ctx, r.db)

	updates := map[string]interface{}{
		"status":     status.String(),
		"updated_at": biztime.NowUTC().UnixMilli(),
	}
	if resolvedAt != nil {
		// resolved_at is stamped once; re-resolving keeps the first timestamp.
		updates["resolved_at"] = gorm.Expr("COALESCE(resolved_at, ?)", resolvedAt.UnixMilli())
	}

	result := tx.
		Model(&models.TicketModel{}).
		Where("id IN ?", ticketIDs).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to bulk update ticket status: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) BulkUpdatePriority(
	ctx context.Context,
	ticketIDs []uint,
	priority vo.Priority,
) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id IN ?", ticketIDs).
		Updates(map[string]interface{}{
			"priority":   priority.String(),
			"updated_at": biztime.NowUTC().UnixMilli(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to bulk update ticket priority: %w", result.Error)
	}

	return nil
}

// applyTicketFilter narrows a tickets query. Search is matched
// case-insensitively against title, description, customer email, and tags.
func applyTicketFilter(query *gorm.DB, filter ticket.TicketFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.CustomerEmail != "" {
		query = query.Where("customer_email = ?", strings.ToLower(filter.CustomerEmail))
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(customer_email) LIKE ? OR LOWER(CAST(tags AS CHAR)) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return query
}
