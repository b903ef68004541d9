package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchHistoryModel mirrors the 'search_history' table.
type SearchHistoryModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID `gorm:"type:char(36);not null;index"`
	Ingredients  string    `gorm:"type:text;not null"`
	RecipesFound int       `gorm:"not null"`
	SearchTime   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SearchHistoryModel) TableName() string {
	return "search_history"
}

// BeforeCreate assigns a UUID and search timestamp when not provided.
func (m *SearchHistoryModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.SearchTime.IsZero() {
		m.SearchTime = time.Now().UTC()
	}

	return nil
}
