package repository

import (
	"context"
	"errors"

	"forkcast/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when a recipe is not in the catalog.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the standard operations for the shared recipe catalog.
type RecipeRepository interface {
	// FindByID retrieves a single recipe by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// FindByName retrieves a recipe by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Recipe, error)

	// Create persists a new recipe to the catalog.
	Create(ctx context.Context, recipe *entity.Recipe) error
}
