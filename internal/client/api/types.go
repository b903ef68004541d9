package api

import "time"

// User mirrors the server's public user shape.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult is the body of a successful register or login.
type AuthResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// Recipe is a full recipe as returned by search and accepted by AddFavorite.
type Recipe struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	CookTime     string   `json:"cook_time"`
	Difficulty   string   `json:"difficulty"`
}

// RecipeSummary is the reduced shape used by the favorites listing.
type RecipeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CookTime    string `json:"cook_time"`
	Difficulty  string `json:"difficulty"`
}

// SearchResult is the body of a recipe search.
type SearchResult struct {
	Recipes         []Recipe `json:"recipes"`
	Total           int      `json:"total"`
	IngredientsUsed string   `json:"ingredients_used"`
}

// HistoryEntry is one past search.
type HistoryEntry struct {
	Ingredients  string    `json:"ingredients"`
	RecipesFound int       `json:"recipes_found"`
	SearchTime   time.Time `json:"search_time"`
}

// Stats summarizes a user's activity.
type Stats struct {
	TotalIngredients  int           `json:"total_ingredients"`
	TotalFavorites    int           `json:"total_favorites"`
	TotalSearches     int           `json:"total_searches"`
	RecentIngredients []string      `json:"recent_ingredients"`
	LastSearch        *HistoryEntry `json:"last_search"`
}

// Health is the body of the health endpoint.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type searchRequest struct {
	Ingredients string `json:"ingredients"`
}

type addIngredientRequest struct {
	Ingredient string `json:"ingredient"`
}

type addFavoriteRequest struct {
	Recipe Recipe `json:"recipe"`
}

type ingredientsResponse struct {
	Ingredients []string `json:"ingredients"`
}

type ingredientAddedResponse struct {
	Message    string `json:"message"`
	Ingredient string `json:"ingredient"`
}

type favoritesResponse struct {
	Favorites []RecipeSummary `json:"favorites"`
}

type historyResponse struct {
	History []HistoryEntry `json:"history"`
}

type profileResponse struct {
	User User `json:"user"`
}

type statsResponse struct {
	Stats Stats `json:"stats"`
}

type errorResponse struct {
	Error string `json:"error"`
}
