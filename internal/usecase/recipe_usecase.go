package usecase

import (
	"context"

	"forkcast/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// FavoriteRecipeInput carries the recipe payload for saving a favorite.
// The recipe is created in the catalog when it does not yet exist.
type FavoriteRecipeInput struct {
	Name         string
	Description  string
	Ingredients  []string
	Instructions []string
	CookTime     string
	Difficulty   string
}

// --- Output DTOs ---

// SearchOutput returns the generated recipes for a search.
type SearchOutput struct {
	Recipes     []*entity.Recipe
	Ingredients string
}

// RecipeUsecase defines the interface for recipe search, favorites, and history.
type RecipeUsecase interface {
	// Search generates recipe suggestions for the ingredients string,
	// records the search, and persists new recipes to the catalog.
	Search(ctx context.Context, userID uuid.UUID, ingredients string) (*SearchOutput, error)

	// Favorites returns the user's saved recipes, most recent first.
	Favorites(ctx context.Context, userID uuid.UUID) ([]entity.RecipeSummary, error)

	// AddFavorite saves a recipe to the user's favorites, creating the
	// catalog entry when needed.
	AddFavorite(ctx context.Context, userID uuid.UUID, input FavoriteRecipeInput) error

	// History returns the user's most recent searches, newest first.
	History(ctx context.Context, userID uuid.UUID) ([]*entity.SearchRecord, error)
}
