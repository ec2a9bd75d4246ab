package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardakaya/secondbrain-backend/internal/models"
	"github.com/ardakaya/secondbrain-backend/internal/store"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ErrContentNotFound covers both a nonexistent id and someone else's item so
// deletes cannot probe other users' collections.
var ErrContentNotFound = errors.New("content not found")

type ContentService struct {
	contents store.ContentStore
}

func NewContentService(contents store.ContentStore) *ContentService {
	return &ContentService{contents: contents}
}

func (s *ContentService) Create(ctx context.Context, ownerID uuid.UUID, title, link, contentType string, tags []string) (*models.Content, error) {
	if tags == nil {
		tags = []string{}
	}
	content := &models.Content{
		UserID: ownerID,
		Title:  title,
		Link:   link,
		Type:   contentType,
		Tags:   datatypes.NewJSONSlice(tags),
	}
	if err := s.contents.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}
	return content, nil
}

func (s *ContentService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Content, error) {
	items, err := s.contents.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return items, nil
}

// Delete re-checks ownership at delete time: the store only removes rows
// matching both id and owner.
func (s *ContentService) Delete(ctx context.Context, ownerID, contentID uuid.UUID) error {
	if err := s.contents.DeleteOwned(ctx, contentID, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("failed to delete content: %w", err)
	}
	return nil
}
