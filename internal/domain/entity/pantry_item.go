package entity

import (
	"time"

	"github.com/google/uuid"
)

// PantryItem is one ingredient a user keeps on hand. Names are stored
// trimmed and lowercased so duplicates differ only by casing collapse.
type PantryItem struct {
	ID         uuid.UUID // The unique identifier for this pantry entry.
	UserID     uuid.UUID // Links the ingredient to its owner.
	Ingredient string    // The normalized ingredient name.
	CreatedAt  time.Time // Timestamp of when the ingredient was added.
}
