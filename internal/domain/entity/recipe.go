package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a dish suggestion, either generated for a search or saved as a
// favorite. Recipes are deduplicated by name across all users.
type Recipe struct {
	ID           uuid.UUID // The unique identifier for the recipe.
	Name         string    // The recipe title, unique across the catalog.
	Description  string    // A short description of the dish.
	Ingredients  []string  // Ingredient lines as returned by the suggester.
	Instructions []string  // Step-by-step preparation instructions.
	CookTime     string    // Human-readable cooking time, e.g. "30 minutes".
	Difficulty   string    // One of "Easy", "Medium", "Hard".
	CreatedAt    time.Time // Timestamp of when the recipe was first persisted.
}

// RecipeSummary is the trimmed recipe shape returned by the favorites listing.
type RecipeSummary struct {
	ID          uuid.UUID
	Name        string
	Description string
	CookTime    string
	Difficulty  string
}

// Summary projects the recipe onto its listing shape.
func (r *Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CookTime:    r.CookTime,
		Difficulty:  r.Difficulty,
	}
}
