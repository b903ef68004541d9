package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteModel mirrors the 'favorites' table. The (user_id, recipe_id) pair
// is unique so a recipe can be favorited at most once per user.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_user_recipe"`
	RecipeID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_user_recipe"`
	CreatedAt time.Time

	Recipe *RecipeModel `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (m *FavoriteModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
