package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteModel mirrors the 'notes' table.
type NoteModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_notes_user_created,priority:1"`
	User       *UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title      string         `gorm:"type:varchar(255);not null"`
	Content    string         `gorm:"type:text;not null"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	FileURL    string         `gorm:"type:varchar(1024)"`
	FileName   string         `gorm:"type:varchar(255)"`
	FileKey    string         `gorm:"type:varchar(512)"`
	CreatedAt  time.Time      `gorm:"index:idx_notes_user_created,priority:2,sort:desc"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}
