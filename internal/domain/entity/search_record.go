package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchRecord captures one recipe search a user performed.
type SearchRecord struct {
	ID           uuid.UUID // The unique identifier for this history entry.
	UserID       uuid.UUID // Links the search to the user who ran it.
	Ingredients  string    // The raw ingredients string the user searched with.
	RecipesFound int       // How many recipes the search produced.
	SearchTime   time.Time // Timestamp of when the search ran.
}
