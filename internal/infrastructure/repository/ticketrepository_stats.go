package repository

import (
	"context"
	"fmt"
	"time"

	"autocrm/internal/domain/ticket"
	"autocrm/internal/infrastructure/persistence/models"
	"autocrm/internal/shared/biztime"
	db "autocrm/internal/shared/db"
)

const millisPerDay = int64(24 * time.Hour / time.Millisecond)

// GetStats aggregates the dashboard numbers in a handful of grouped queries
// instead of loading every ticket into memory.
func (r *TicketRepository) GetStats(ctx context.Context, filter ticket.TicketFilter) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	stats := &ticket.Stats{
		StatusDistribution:   make(map[string]int64),
		PriorityDistribution: make(map[string]int64),
	}

	query := applyTicketFilter(tx.Model(&models.TicketModel{}), filter)
	if err := query.Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	type groupRow struct {
		Bucket string
		Cnt    int64
	}

	var statusRows []groupRow
	if err := applyTicketFilter(tx.Model(&models.TicketModel{}), filter).
		Select("status AS bucket, COUNT(*) AS cnt").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, fmt.Errorf("failed to group tickets by status: %w", err)
	}
	for _, row := range statusRows {
		stats.StatusDistribution[row.Bucket] = row.Cnt
	}

	var priorityRows []groupRow
	if err := applyTicketFilter(tx.Model(&models.TicketModel{}), filter).
		Select("priority AS bucket, COUNT(*) AS cnt").
		Group("priority").
		Scan(&priorityRows).Error; err != nil {
		return nil, fmt.Errorf("failed to group tickets by priority: %w", err)
	}
	for _, row := range priorityRows {
		stats.PriorityDistribution[row.Bucket] = row.Cnt
	}

	var resolution struct {
		Cnt       int64
		AvgMillis float64
	}
	if err := applyTicketFilter(tx.Model(&models.TicketModel{}), filter).
		Select("COUNT(*) AS cnt, COALESCE(AVG(resolved_at - created_at), 0) AS avg_millis").
		Where("resolved_at IS NOT NULL").
		Scan(&resolution).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate resolution times: %w", err)
	}
	stats.ResolvedCount = resolution.Cnt
	if resolution.Cnt > 0 {
		stats.AvgResolutionDays = resolution.AvgMillis / float64(millisPerDay)
	}

	now := biztime.NowUTC().UnixMilli()
	dayAgo := now - millisPerDay
	weekAgo := now - 7*millisPerDay
	monthAgo := now - 30*millisPerDay

	var ages struct {
		UnderOneDay   int64
		UnderOneWeek  int64
		UnderOneMonth int64
		OverOneMonth  int64
	}
	if err := applyTicketFilter(tx.Model(&models.TicketModel{}), filter).
		Select(`
			COALESCE(SUM(CASE WHEN created_at > ? THEN 1 ELSE 0 END), 0) AS under_one_day,
			COALESCE(SUM(CASE WHEN created_at <= ? AND created_at > ? THEN 1 ELSE 0 END), 0) AS under_one_week,
			COALESCE(SUM(CASE WHEN created_at <= ? AND created_at > ? THEN 1 ELSE 0 END), 0) AS under_one_month,
			COALESCE(SUM(CASE WHEN created_at <= ? THEN 1 ELSE 0 END), 0) AS over_one_month`,
			dayAgo, dayAgo, weekAgo, weekAgo, monthAgo, monthAgo).
		Scan(&ages).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate ticket ages: %w", err)
	}
	stats.AgeBuckets = ticket.AgeBuckets{
		UnderOneDay:   ages.UnderOneDay,
		UnderOneWeek:  ages.UnderOneWeek,
		UnderOneMonth: ages.UnderOneMonth,
		OverOneMonth:  ages.OverOneMonth,
	}

	return stats, nil
}
