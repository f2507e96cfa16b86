package audit

import (
	"context"
	"time"

	"hrm/models"
)

// ListFilters là bộ lọc đọc audit log
type ListFilters struct {
	EntityName string
	EntityKey  string
	ActorID    *uint
	Action     string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

// List trả về audit log theo filter, mới nhất trước, kèm tổng số bản ghi
func (r *Recorder) List(ctx context.Context, filters ListFilters) ([]models.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if filters.EntityName != "" {
		query = query.Where("entity_name = ?", filters.EntityName)
	}
	if filters.EntityKey != "" {
		query = query.Where("entity_key = ?", filters.EntityKey)
	}
	if filters.ActorID != nil {
		query = query.Where("actor_id = ?", *filters.ActorID)
	}
	if filters.Action != "" {
		query = query.Where("action = ?", filters.Action)
	}
	if filters.From != nil {
		query = query.Where("created_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("created_at <= ?", *filters.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = 20
	}

	var entries []models.AuditLog
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
