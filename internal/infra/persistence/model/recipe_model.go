package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeModel mirrors the 'recipes' table. Ingredients and instructions are
// stored as JSON-encoded text, matching the suggester's array output.
type RecipeModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"type:varchar(200);uniqueIndex;not null"`
	Description  string    `gorm:"type:text"`
	Ingredients  string    `gorm:"type:text"`
	Instructions string    `gorm:"type:text"`
	CookTime     string    `gorm:"type:varchar(50)"`
	Difficulty   string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (m *RecipeModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
