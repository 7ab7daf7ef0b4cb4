package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNote_OwnedBy(t *testing.T) {
	owner := uuid.New()
	note := &Note{ID: uuid.New(), UserID: owner}

	assert.True(t, note.OwnedBy(owner))
	assert.False(t, note.OwnedBy(uuid.New()))

	var missing *Note
	assert.False(t, missing.OwnedBy(owner))
}

func TestNote_Attachment(t *testing.T) {
	note := &Note{FileURL: "https://cdn/x.png", FileName: "x.png", FileKey: "notes/1/x.png"}
	assert.True(t, note.HasAttachment())

	note.ClearAttachment()
	assert.False(t, note.HasAttachment())
	assert.Empty(t, note.FileURL)
	assert.Empty(t, note.FileName)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
}
