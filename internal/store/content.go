package store

import (
	"context"

	"github.com/ardakaya/secondbrain-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contentStore struct {
	db *gorm.DB
}

func NewContentStore(db *gorm.DB) ContentStore {
	return &contentStore{db: db}
}

func (s *contentStore) Create(ctx context.Context, content *models.Content) error {
	if err := s.db.WithContext(ctx).Create(content).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *contentStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Content, error) {
	var items []models.Content
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (s *contentStore) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Content{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
