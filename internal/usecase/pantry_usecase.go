package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PantryUsecase defines the interface for managing a user's ingredient list.
type PantryUsecase interface {
	// ListIngredients returns the user's ingredients, most recently added first.
	ListIngredients(ctx context.Context, userID uuid.UUID) ([]string, error)

	// AddIngredient normalizes and stores a new ingredient, returning the
	// stored form.
	AddIngredient(ctx context.Context, userID uuid.UUID, ingredient string) (string, error)

	// RemoveIngredient deletes an ingredient by name.
	RemoveIngredient(ctx context.Context, userID uuid.UUID, ingredient string) error
}
