package dto

import (
	"time"

	"github.com/ardakaya/secondbrain-backend/internal/models"
	"github.com/google/uuid"
)

type CreateContentRequest struct {
	Title string   `json:"title"`
	Link  string   `json:"link"`
	Type  string   `json:"type"`
	Tags  []string `json:"tags"`
}

type DeleteContentRequest struct {
	ContentID string `json:"contentId"`
}

type ContentOwner struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type ContentItem struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Link      string       `json:"link"`
	Type      string       `json:"type"`
	Tags      []string     `json:"tags"`
	User      ContentOwner `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

type ContentListResponse struct {
	Content []ContentItem `json:"content"`
}

type ShareLinkResponse struct {
	ShareLink string `json:"shareLink"`
}

type SharedBrainResponse struct {
	Username string        `json:"username"`
	Content  []ContentItem `json:"content"`
}

// NewContentItem shapes a stored item for responses; the owner association is
// reduced to id and username.
func NewContentItem(c models.Content) ContentItem {
	return ContentItem{
		ID:        c.ID,
		Title:     c.Title,
		Link:      c.Link,
		Type:      c.Type,
		Tags:      c.Tags,
		User:      ContentOwner{ID: c.UserID, Username: c.User.Username},
		CreatedAt: c.CreatedAt,
	}
}

func NewContentList(items []models.Content) []ContentItem {
	out := make([]ContentItem, 0, len(items))
	for _, c := range items {
		out = append(out, NewContentItem(c))
	}
	return out
}
