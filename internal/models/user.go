package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Password is empty for Google-only accounts;
// GoogleID is the provider's stable subject identifier. ShareID is assigned
// lazily the first time the user requests a share link and never changes.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Email     *string   `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Password  string    `gorm:"size:255" json:"-"`
	GoogleID  *string   `gorm:"size:255;uniqueIndex" json:"-"`
	ShareID   *string   `gorm:"size:32;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
