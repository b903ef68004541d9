package repository

import (
	"context"
	"errors"

	"forkcast/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFavoriteExists is returned when the user already favorited the recipe.
var ErrFavoriteExists = errors.New("recipe already in favorites")

// FavoriteRepository defines the standard operations for saved recipes.
type FavoriteRepository interface {
	// ListByUser returns summaries of the user's favorited recipes, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.RecipeSummary, error)

	// Create persists a new favorite. Returns ErrFavoriteExists when the
	// user already favorited the recipe.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// CountByUser returns the number of recipes the user has favorited.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
