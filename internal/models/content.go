package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Content is a single bookmarked item. The owner is set at creation and
// never reassigned.
type Content struct {
	ID        uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID                   `gorm:"type:uuid;not null;index" json:"userId"`
	Title     string                      `gorm:"size:500" json:"title"`
	Link      string                      `gorm:"type:text" json:"link"`
	Type      string                      `gorm:"size:50" json:"type"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
	User      User                        `gorm:"foreignKey:UserID" json:"-"`
}
