package services

import (
	"context"

	"github.com/ardakaya/secondbrain-backend/internal/models"
	"github.com/ardakaya/secondbrain-backend/internal/store"
	"github.com/google/uuid"
)

// In-memory stand-ins for the gorm stores.

type fakeUsers struct {
	users map[uuid.UUID]*models.User

	createErr error
	// shareConflicts makes the next N SetShareID calls fail with ErrDuplicate
	shareConflicts int
}

var _ store.UserStore = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, ex := range f.users {
		if ex.Username == u.Username {
			return store.ErrDuplicate
		}
		if u.Email != nil && ex.Email != nil && *ex.Email == *u.Email {
			return store.ErrDuplicate
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cpy := *u
	f.users[u.ID] = &cpy
	return nil
}

func (f *fakeUsers) ByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cpy := *u
	return &cpy, nil
}

func (f *fakeUsers) ByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) ByGoogleIDOrUsername(_ context.Context, googleID, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			cpy := *u
			return &cpy, nil
		}
	}
	for _, u := range f.users {
		if u.Username == username {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) ByShareID(_ context.Context, shareID string) (*models.User, error) {
	for _, u := range f.users {
		if u.ShareID != nil && *u.ShareID == shareID {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) LinkGoogleID(_ context.Context, id uuid.UUID, googleID string) error {
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.GoogleID = &googleID
	return nil
}

func (f *fakeUsers) SetShareID(_ context.Context, id uuid.UUID, shareID string) error {
	if f.shareConflicts > 0 {
		f.shareConflicts--
		return store.ErrDuplicate
	}
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	for _, ex := range f.users {
		if ex.ShareID != nil && *ex.ShareID == shareID {
			return store.ErrDuplicate
		}
	}
	u.ShareID = &shareID
	return nil
}

type fakeContents struct {
	items map[uuid.UUID]*models.Content
	users *fakeUsers
}

var _ store.ContentStore = (*fakeContents)(nil)

func newFakeContents(users *fakeUsers) *fakeContents {
	return &fakeContents{items: map[uuid.UUID]*models.Content{}, users: users}
}

func (f *fakeContents) Create(_ context.Context, c *models.Content) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cpy := *c
	f.items[c.ID] = &cpy
	return nil
}

func (f *fakeContents) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Content, error) {
	var out []models.Content
	for _, c := range f.items {
		if c.UserID != ownerID {
			continue
		}
		cpy := *c
		if f.users != nil {
			if owner, ok := f.users.users[ownerID]; ok {
				cpy.User = *owner
			}
		}
		out = append(out, cpy)
	}
	return out, nil
}

func (f *fakeContents) DeleteOwned(_ context.Context, id, ownerID uuid.UUID) error {
	c, ok := f.items[id]
	if !ok || c.UserID != ownerID {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeGoogle struct {
	claims *GoogleJWTClaims
	err    error
}

func (f *fakeGoogle) VerifyToken(idToken, clientID string) (*GoogleJWTClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}
