package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups notes of a single owner. Names are unique per owner.
type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	NoteCount int64     `json:"noteCount"` // Only populated by listings.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the category belongs to userID.
func (c *Category) OwnedBy(userID uuid.UUID) bool {
	return c != nil && c.UserID == userID
}
