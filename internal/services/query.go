package services

import (
	"context"

	"newsgrove/internal/models"

	"gorm.io/gorm"
)

// QueryEngine builds and executes listing queries against the item table.
type QueryEngine struct {
	db *gorm.DB
}

func NewQueryEngine(db *gorm.DB) *QueryEngine {
	return &QueryEngine{db: db}
}

// List runs one filtered, sorted, paginated scan. Every set filter field
// narrows the result (AND semantics); the free-text query is a case-sensitive
// substring match against title or body. Child comments are never loaded
// here: listing must not pay the cost of materializing subtrees.
func (q *QueryEngine) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	filter.Clamp()

	tx := q.db.WithContext(ctx).Model(&models.Item{})

	if filter.Kind != "" {
		tx = tx.Where("type = ?", filter.Kind)
	}
	if filter.By != nil {
		tx = tx.Where(`"by" = ?`, *filter.By)
	}
	if filter.BeforeTime != nil {
		tx = tx.Where("time <= ?", *filter.BeforeTime)
	}
	if filter.AfterTime != nil {
		tx = tx.Where("time >= ?", *filter.AfterTime)
	}
	if filter.MinScore != nil {
		tx = tx.Where("score >= ?", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		tx = tx.Where("score <= ?", *filter.MaxScore)
	}
	if filter.MinComments != nil {
		tx = tx.Where("descendants >= ?", *filter.MinComments)
	}
	if filter.MaxComments != nil {
		tx = tx.Where("descendants <= ?", *filter.MaxComments)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		tx = tx.Where("title LIKE ? OR text LIKE ?", pattern, pattern)
	}

	// Without a sort key the result order is store-defined; callers must not
	// rely on it. The sort column is taken from the validated enum, never
	// from raw caller input.
	switch filter.SortBy {
	case models.SortByScore, models.SortByTime:
		dir := "ASC"
		if filter.SortOrder == models.OrderDesc {
			dir = "DESC"
		}
		tx = tx.Order(string(filter.SortBy) + " " + dir)
	}

	var items []models.Item
	err := tx.Offset(filter.Skip).Limit(filter.Limit).Find(&items).Error
	return items, err
}
