// Package view renders data snapshots into text blocks. Every renderer is a
// pure function of its input: callers replace the previous block wholesale
// rather than patching it.
package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"forkcast/internal/client/api"
)

// RenderRecipes renders the search results grid.
func RenderRecipes(recipes []api.Recipe) string {
	if len(recipes) == 0 {
		return "No recipes found. Try different ingredients!\n"
	}

	var b strings.Builder
	for i, recipe := range recipes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("[%d] %s (%s)\n", i+1, recipe.Name, difficultyBadge(recipe.Difficulty)))
		if recipe.Description != "" {
			b.WriteString("    " + recipe.Description + "\n")
		}
		if recipe.CookTime != "" {
			b.WriteString("    Cook time: " + recipe.CookTime + "\n")
		}
		if len(recipe.Ingredients) > 0 {
			b.WriteString("    Ingredients: " + strings.Join(recipe.Ingredients, ", ") + "\n")
		}
		for j, step := range recipe.Instructions {
			b.WriteString(fmt.Sprintf("    %d. %s\n", j+1, step))
		}
	}

	return b.String()
}

// RenderIngredients renders the pantry as removable tags.
func RenderIngredients(ingredients []string) string {
	if len(ingredients) == 0 {
		return "Your pantry is empty. Add some ingredients!\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Pantry (%d):\n", len(ingredients)))
	for _, ingredient := range ingredients {
		b.WriteString("  [x] " + ingredient + "\n")
	}

	return b.String()
}

// RenderFavorites renders the saved-recipe grid.
func RenderFavorites(favorites []api.RecipeSummary) string {
	if len(favorites) == 0 {
		return "No favorites yet. Save recipes you like!\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Favorites (%d):\n", len(favorites)))
	for _, favorite := range favorites {
		b.WriteString("  * " + favorite.Name)
		if favorite.Difficulty != "" {
			b.WriteString(" (" + difficultyBadge(favorite.Difficulty) + ")")
		}
		if favorite.CookTime != "" {
			b.WriteString(" - " + favorite.CookTime)
		}
		b.WriteString("\n")
		if favorite.Description != "" {
			b.WriteString("    " + favorite.Description + "\n")
		}
	}

	return b.String()
}

// RenderHistory renders past searches with relative ages against now.
func RenderHistory(history []api.HistoryEntry, now time.Time) string {
	if len(history) == 0 {
		return "No search history yet.\n"
	}

	var b strings.Builder
	b.WriteString("Recent searches:\n")
	for _, entry := range history {
		noun := "recipes"
		if entry.RecipesFound == 1 {
			noun = "recipe"
		}
		b.WriteString(fmt.Sprintf("  %s - %d %s found (%s)\n",
			entry.Ingredients, entry.RecipesFound, noun, RelativeAge(entry.SearchTime, now)))
	}

	return b.String()
}

// RenderProfile renders the account card.
func RenderProfile(user *api.User) string {
	if user == nil {
		return "Not signed in.\n"
	}

	var b strings.Builder
	b.WriteString(user.Name + "\n")
	b.WriteString(user.Email + "\n")
	if !user.CreatedAt.IsZero() {
		b.WriteString("Member since " + user.CreatedAt.Format("January 2, 2006") + "\n")
	}

	return b.String()
}

// RenderStats renders the activity summary.
func RenderStats(stats *api.Stats, now time.Time) string {
	if stats == nil {
		return "No activity yet.\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Ingredients: %d\n", stats.TotalIngredients))
	b.WriteString(fmt.Sprintf("Favorites:   %d\n", stats.TotalFavorites))
	b.WriteString(fmt.Sprintf("Searches:    %d\n", stats.TotalSearches))
	if len(stats.RecentIngredients) > 0 {
		b.WriteString("Recently added: " + strings.Join(stats.RecentIngredients, ", ") + "\n")
	}
	if stats.LastSearch != nil {
		b.WriteString(fmt.Sprintf("Last search: %s (%s)\n",
			stats.LastSearch.Ingredients, RelativeAge(stats.LastSearch.SearchTime, now)))
	}

	return b.String()
}

// RelativeAge describes how long ago t was, relative to now. The hour label
// rounds to the nearest whole hour (90 minutes reads as "2 hours ago"), but
// the switch to day labels happens strictly at 24 elapsed hours, so an entry
// at 23h31m still renders in hours ("24 hours ago") rather than "Yesterday".
func RelativeAge(t, now time.Time) string {
	diff := now.Sub(t)

	minutes := int(diff.Minutes())
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min ago", minutes)
	}

	if diff < 24*time.Hour {
		hours := int(math.Round(diff.Minutes() / 60))
		if hours == 1 {
			return "1 hour ago"
		}

		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(diff.Hours() / 24)
	if days == 1 {
		return "Yesterday"
	}

	return fmt.Sprintf("%d days ago", days)
}

func difficultyBadge(difficulty string) string {
	switch strings.ToLower(difficulty) {
	case "easy":
		return "easy"
	case "medium":
		return "medium"
	case "hard":
		return "hard"
	default:
		return "unknown"
	}
}
