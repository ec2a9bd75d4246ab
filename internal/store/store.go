// Package store defines the persistence boundary for users and content.
// Services depend on these interfaces so they can be exercised without a
// database; the gorm-backed implementations live alongside.
package store

import (
	"context"
	"errors"

	"github.com/ardakaya/secondbrain-backend/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrDuplicate signals a unique-constraint violation (username, email,
	// share id).
	ErrDuplicate = errors.New("record already exists")
	// ErrNotFound signals a lookup miss or a scoped delete that matched
	// nothing.
	ErrNotFound = errors.New("record not found")
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	ByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ByUsername(ctx context.Context, username string) (*models.User, error)
	ByGoogleIDOrUsername(ctx context.Context, googleID, username string) (*models.User, error)
	ByShareID(ctx context.Context, shareID string) (*models.User, error)
	LinkGoogleID(ctx context.Context, id uuid.UUID, googleID string) error
	SetShareID(ctx context.Context, id uuid.UUID, shareID string) error
}

type ContentStore interface {
	Create(ctx context.Context, content *models.Content) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Content, error)
	// DeleteOwned removes the item only when ownerID matches; a miss and a
	// foreign item are both ErrNotFound.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error
}
