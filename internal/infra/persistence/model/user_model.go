// Package model holds the GORM persistence structs. They never leave the
// infra layer; repositories map them to domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All lists every model in dependency order for auto-migration.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&NoteModel{},
	}
}
