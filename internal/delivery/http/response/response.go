// Package response defines the wire shapes of the public API. Clients depend
// on these field names verbatim, so they change only with the API version.
package response

import (
	"time"

	"forkcast/internal/domain/entity"
)

// User is the account payload embedded in auth and profile responses.
// The password hash never leaves the domain layer.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser maps a domain user onto its wire shape.
func NewUser(user *entity.User) User {
	return User{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// Auth is the response for successful registration and login.
type Auth struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// Recipe is the full recipe payload returned by search.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	CookTime     string   `json:"cook_time"`
	Difficulty   string   `json:"difficulty"`
}

// NewRecipe maps a domain recipe onto its wire shape.
func NewRecipe(recipe *entity.Recipe) Recipe {
	return Recipe{
		ID:           recipe.ID.String(),
		Name:         recipe.Name,
		Description:  recipe.Description,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		CookTime:     recipe.CookTime,
		Difficulty:   recipe.Difficulty,
	}
}

// NewRecipes maps a slice of domain recipes, never returning nil so the
// wire field encodes as [] instead of null.
func NewRecipes(recipes []*entity.Recipe) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, NewRecipe(recipe))
	}

	return out
}

// RecipeSummary is the trimmed recipe payload used by the favorites listing.
type RecipeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CookTime    string `json:"cook_time"`
	Difficulty  string `json:"difficulty"`
}

// NewRecipeSummaries maps domain summaries onto their wire shape.
func NewRecipeSummaries(summaries []entity.RecipeSummary) []RecipeSummary {
	out := make([]RecipeSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, RecipeSummary{
			ID:          s.ID.String(),
			Name:        s.Name,
			Description: s.Description,
			CookTime:    s.CookTime,
			Difficulty:  s.Difficulty,
		})
	}

	return out
}

// Search is the response for a recipe search.
type Search struct {
	Recipes         []Recipe `json:"recipes"`
	Total           int      `json:"total"`
	IngredientsUsed string   `json:"ingredients_used"`
}

// Ingredients is the response for the pantry listing.
type Ingredients struct {
	Ingredients []string `json:"ingredients"`
}

// IngredientAdded is the response for a successful pantry addition.
type IngredientAdded struct {
	Message    string `json:"message"`
	Ingredient string `json:"ingredient"`
}

// Message is a bare confirmation response.
type Message struct {
	Message string `json:"message"`
}

// Favorites is the response for the favorites listing.
type Favorites struct {
	Favorites []RecipeSummary `json:"favorites"`
}

// HistoryEntry is one search in the history listing.
type HistoryEntry struct {
	Ingredients  string    `json:"ingredients"`
	RecipesFound int       `json:"recipes_found"`
	SearchTime   time.Time `json:"search_time"`
}

// History is the response for the search history listing.
type History struct {
	History []HistoryEntry `json:"history"`
}

// NewHistory maps domain search records onto the history wire shape.
func NewHistory(records []*entity.SearchRecord) History {
	entries := make([]HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, HistoryEntry{
			Ingredients:  record.Ingredients,
			RecipesFound: record.RecipesFound,
			SearchTime:   record.SearchTime,
		})
	}

	return History{History: entries}
}

// Profile is the response for the profile endpoint.
type Profile struct {
	User User `json:"user"`
}

// Stats is the activity counters payload.
type Stats struct {
	TotalIngredients  int           `json:"total_ingredients"`
	TotalFavorites    int           `json:"total_favorites"`
	TotalSearches     int           `json:"total_searches"`
	RecentIngredients []string      `json:"recent_ingredients"`
	LastSearch        *HistoryEntry `json:"last_search"`
}

// NewStats maps domain stats onto their wire shape.
func NewStats(stats *entity.UserStats) Stats {
	out := Stats{
		TotalIngredients:  stats.TotalIngredients,
		TotalFavorites:    stats.TotalFavorites,
		TotalSearches:     stats.TotalSearches,
		RecentIngredients: stats.RecentIngredients,
	}
	if out.RecentIngredients == nil {
		out.RecentIngredients = []string{}
	}
	if stats.LastSearch != nil {
		out.LastSearch = &HistoryEntry{
			Ingredients:  stats.LastSearch.Ingredients,
			RecipesFound: stats.LastSearch.RecipesFound,
			SearchTime:   stats.LastSearch.SearchTime,
		}
	}

	return out
}

// StatsEnvelope wraps the stats payload.
type StatsEnvelope struct {
	Stats Stats `json:"stats"`
}

// Health is the response for the health endpoint.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
