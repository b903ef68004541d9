package repository

import (
	"context"
	"errors"

	"forkcast/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for pantry persistence.
var (
	// ErrIngredientNotFound is returned when an ingredient is not in the user's pantry.
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrIngredientExists is returned when the ingredient is already in the user's pantry.
	ErrIngredientExists = errors.New("ingredient already added")
)

// PantryRepository defines the standard operations for a user's ingredient list.
type PantryRepository interface {
	// ListByUser returns all pantry items for a user, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PantryItem, error)

	// Create persists a new pantry item. Returns ErrIngredientExists when the
	// user already has the ingredient.
	Create(ctx context.Context, item *entity.PantryItem) error

	// DeleteByName removes an ingredient by its normalized name.
	// Returns ErrIngredientNotFound when the user does not have it.
	DeleteByName(ctx context.Context, userID uuid.UUID, ingredient string) error

	// CountByUser returns the number of pantry items the user holds.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
