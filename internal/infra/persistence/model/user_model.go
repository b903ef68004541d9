// Package model contains the GORM persistence models mirroring the MySQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. UUIDs are generated application-side
// in BeforeCreate since MySQL has no native UUID column default.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	PantryItems   []PantryItemModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Favorites     []FavoriteModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SearchHistory []SearchHistoryModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
