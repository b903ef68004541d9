package view

import (
	"testing"
	"time"

	"forkcast/internal/client/api"

	"github.com/stretchr/testify/assert"
)

func TestRelativeAge(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds ago", now.Add(-45 * time.Second), "Just now"},
		{"under a minute", now.Add(-59 * time.Second), "Just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5 min ago"},
		{"just under an hour", now.Add(-59 * time.Minute), "59 min ago"},
		{"one hour", now.Add(-time.Hour), "1 hour ago"},
		{"eighty minutes is still one hour", now.Add(-80 * time.Minute), "1 hour ago"},
		{"ninety minutes rounds up", now.Add(-90 * time.Minute), "2 hours ago"},
		{"just under a day stays in hours", now.Add(-(23*time.Hour + 31*time.Minute)), "24 hours ago"},
		{"yesterday", now.Add(-25 * time.Hour), "Yesterday"},
		{"almost two days is still yesterday", now.Add(-47 * time.Hour), "Yesterday"},
		{"three days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"a week", now.Add(-7 * 24 * time.Hour), "7 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeAge(tt.t, now))
		})
	}
}

func TestRenderRecipes_Empty(t *testing.T) {
	out := RenderRecipes(nil)

	assert.Contains(t, out, "No recipes found")
}

func TestRenderRecipes(t *testing.T) {
	out := RenderRecipes([]api.Recipe{
		{
			Name:         "Tomato Basil Pasta",
			Description:  "A quick weeknight pasta.",
			Ingredients:  []string{"tomato", "basil", "pasta"},
			Instructions: []string{"Boil pasta.", "Toss with sauce."},
			CookTime:     "20 minutes",
			Difficulty:   "Easy",
		},
		{Name: "Caprese Salad", Difficulty: "Medium"},
	})

	assert.Contains(t, out, "[1] Tomato Basil Pasta (easy)")
	assert.Contains(t, out, "A quick weeknight pasta.")
	assert.Contains(t, out, "Cook time: 20 minutes")
	assert.Contains(t, out, "Ingredients: tomato, basil, pasta")
	assert.Contains(t, out, "1. Boil pasta.")
	assert.Contains(t, out, "2. Toss with sauce.")
	assert.Contains(t, out, "[2] Caprese Salad (medium)")
}

func TestRenderRecipes_UnknownDifficulty(t *testing.T) {
	out := RenderRecipes([]api.Recipe{{Name: "Mystery Dish", Difficulty: "Expert"}})

	assert.Contains(t, out, "(unknown)")
}

func TestRenderIngredients_Empty(t *testing.T) {
	out := RenderIngredients(nil)

	assert.Contains(t, out, "Your pantry is empty")
}

func TestRenderIngredients(t *testing.T) {
	out := RenderIngredients([]string{"basil", "tomato"})

	assert.Contains(t, out, "Pantry (2):")
	assert.Contains(t, out, "[x] basil")
	assert.Contains(t, out, "[x] tomato")
}

func TestRenderFavorites_Empty(t *testing.T) {
	out := RenderFavorites(nil)

	assert.Contains(t, out, "No favorites yet")
}

func TestRenderFavorites(t *testing.T) {
	out := RenderFavorites([]api.RecipeSummary{
		{Name: "Caprese Salad", Description: "Fresh.", CookTime: "10 minutes", Difficulty: "Easy"},
	})

	assert.Contains(t, out, "Favorites (1):")
	assert.Contains(t, out, "* Caprese Salad (easy) - 10 minutes")
	assert.Contains(t, out, "Fresh.")
}

func TestRenderHistory_Empty(t *testing.T) {
	out := RenderHistory(nil, time.Now())

	assert.Contains(t, out, "No search history yet")
}

func TestRenderHistory(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	out := RenderHistory([]api.HistoryEntry{
		{Ingredients: "tomato, basil", RecipesFound: 3, SearchTime: now.Add(-90 * time.Minute)},
		{Ingredients: "egg", RecipesFound: 1, SearchTime: now.Add(-3 * 24 * time.Hour)},
	}, now)

	assert.Contains(t, out, "tomato, basil - 3 recipes found (2 hours ago)")
	assert.Contains(t, out, "egg - 1 recipe found (3 days ago)")
}

func TestRenderProfile(t *testing.T) {
	out := RenderProfile(&api.User{
		Name:      "Test User",
		Email:     "test@example.com",
		CreatedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, out, "Test User")
	assert.Contains(t, out, "test@example.com")
	assert.Contains(t, out, "Member since January 15, 2025")
}

func TestRenderProfile_Nil(t *testing.T) {
	assert.Contains(t, RenderProfile(nil), "Not signed in")
}

func TestRenderStats(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	out := RenderStats(&api.Stats{
		TotalIngredients:  4,
		TotalFavorites:    2,
		TotalSearches:     9,
		RecentIngredients: []string{"tomato", "basil"},
		LastSearch: &api.HistoryEntry{
			Ingredients: "tomato",
			SearchTime:  now.Add(-30 * time.Minute),
		},
	}, now)

	assert.Contains(t, out, "Ingredients: 4")
	assert.Contains(t, out, "Searches:    9")
	assert.Contains(t, out, "Recently added: tomato, basil")
	assert.Contains(t, out, "Last search: tomato (30 min ago)")
}

func TestRenderStats_Nil(t *testing.T) {
	assert.Contains(t, RenderStats(nil, time.Now()), "No activity yet")
}
