package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite associates a user with a saved recipe. A user can favorite a
// given recipe at most once.
type Favorite struct {
	ID        uuid.UUID // The unique identifier for this favorite record.
	UserID    uuid.UUID // Links the favorite to its owner.
	RecipeID  uuid.UUID // The favorited recipe.
	CreatedAt time.Time // Timestamp of when the recipe was favorited.
}
