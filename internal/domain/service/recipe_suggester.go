package service

import (
	"context"

	"forkcast/internal/domain/entity"
)

// RecipeSuggester defines the interface for generating recipe suggestions
// from a free-form ingredients string. Implementations must always return
// suggestions: upstream failures degrade to deterministic fallbacks rather
// than propagating an error to the caller.
type RecipeSuggester interface {
	// Suggest returns recipe suggestions for the given ingredients.
	Suggest(ctx context.Context, ingredients string) ([]*entity.Recipe, error)
}
