package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PantryItemModel mirrors the 'pantry_items' table. The (user_id, ingredient)
// pair is unique so the database enforces the no-duplicates rule.
type PantryItemModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_user_ingredient"`
	Ingredient string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_user_ingredient"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PantryItemModel) TableName() string {
	return "pantry_items"
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (m *PantryItemModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
