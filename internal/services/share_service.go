package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ardakaya/secondbrain-backend/internal/models"
	"github.com/ardakaya/secondbrain-backend/internal/store"
	"github.com/google/uuid"
)

var (
	ErrShareNotFound = errors.New("invalid share link")
	ErrUserNotFound  = errors.New("user not found")
)

// ShareService hands out and resolves the public read-only links to a user's
// collection. A user gets exactly one share id for life; uniqueness is
// enforced by the column index, with a fresh id generated on conflict.
type ShareService struct {
	users    store.UserStore
	contents store.ContentStore
	baseURL  string
}

func NewShareService(users store.UserStore, contents store.ContentStore, baseURL string) *ShareService {
	return &ShareService{users: users, contents: contents, baseURL: baseURL}
}

// GetOrCreateLink is idempotent: repeated calls for the same user return the
// same URL.
func (s *ShareService) GetOrCreateLink(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user.ShareID != nil {
		return s.link(*user.ShareID), nil
	}

	for attempt := 0; attempt < 3; attempt++ {
		shareID, err := generateShareID()
		if err != nil {
			return "", err
		}
		err = s.users.SetShareID(ctx, userID, shareID)
		if err == nil {
			return s.link(shareID), nil
		}
		if !errors.Is(err, store.ErrDuplicate) {
			return "", fmt.Errorf("failed to store share id: %w", err)
		}
	}
	return "", errors.New("failed to generate a unique share id")
}

// Resolve looks up the owner of a share id and returns their username and
// content. No authentication required; nothing beyond username and content is
// exposed.
func (s *ShareService) Resolve(ctx context.Context, shareID string) (string, []models.Content, error) {
	user, err := s.users.ByShareID(ctx, shareID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrShareNotFound
		}
		return "", nil, fmt.Errorf("failed to look up share id: %w", err)
	}

	items, err := s.contents.ListByOwner(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to list shared content: %w", err)
	}
	return user.Username, items, nil
}

func (s *ShareService) link(shareID string) string {
	return s.baseURL + "/share/" + shareID
}

// generateShareID returns 8 random bytes as 16 hex characters.
func generateShareID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
