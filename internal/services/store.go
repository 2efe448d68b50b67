package services

import (
	"context"
	"errors"

	"newsgrove/internal/models"

	"gorm.io/gorm"
)

// ItemStore is the read-only accessor over the persisted item collection.
type ItemStore struct {
	db *gorm.DB
}

func NewItemStore(db *gorm.DB) *ItemStore {
	return &ItemStore{db: db}
}

// GetByID fetches a single item. Returns gorm.ErrRecordNotFound when absent.
func (s *ItemStore) GetByID(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).First(&item, id).Error
	return item, err
}

// GetUser fetches a single user profile.
func (s *ItemStore) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return user, err
}

// RankInputs returns the ranking metadata for one item. ok is false when the
// item is missing or has no title; both are silently dropped by the ranking
// stage rather than treated as errors. A missing score defaults to 1 and a
// missing time to 0.
func (s *ItemStore) RankInputs(ctx context.Context, id int64) (title string, score int, age int64, ok bool, err error) {
	var item models.Item
	err = s.db.WithContext(ctx).Select("id", "title", "score", "time").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", 0, 0, false, nil
	}
	if err != nil {
		return "", 0, 0, false, err
	}
	if item.Title == nil || *item.Title == "" {
		return "", 0, 0, false, nil
	}

	score = 1
	if item.Score != nil {
		score = *item.Score
	}
	if item.Time != nil {
		age = *item.Time
	}
	return *item.Title, score, age, true, nil
}

// ListChildren returns up to limit children of parentID with the given kind,
// ordered by the parent's display order.
func (s *ItemStore) ListChildren(ctx context.Context, parentID int64, kind string, limit int) ([]models.Item, error) {
	var items []models.Item
	err := s.db.WithContext(ctx).
		Select("items.*").
		Joins("JOIN kids ON kids.kid = items.id").
		Where("kids.item = ? AND items.type = ?", parentID, kind).
		Order("kids.display_order ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
