package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is a titled text entry owned by a single user. It may be tagged with
// one of the owner's categories and carry one file attachment.
type Note struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CategoryID *uuid.UUID `json:"categoryId"`
	Category   *Category  `json:"category"`
	FileURL    string     `json:"fileUrl,omitempty"`
	FileName   string     `json:"fileName,omitempty"`
	FileKey    string     `json:"-"` // Blob storage key of the attachment.
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// OwnedBy reports whether the note belongs to userID.
func (n *Note) OwnedBy(userID uuid.UUID) bool {
	return n != nil && n.UserID == userID
}

// HasAttachment reports whether a file is attached to the note.
func (n *Note) HasAttachment() bool {
	return n != nil && n.FileKey != ""
}

// ClearAttachment drops the attachment fields.
func (n *Note) ClearAttachment() {
	n.FileURL = ""
	n.FileName = ""
	n.FileKey = ""
}

// NoteFilter narrows a note listing. Zero values mean no filtering.
type NoteFilter struct {
	Search       string     // Case-insensitive match on title or content.
	CategoryID   *uuid.UUID // Exact category.
	CategoryName string     // Category name, case-insensitive.
}
