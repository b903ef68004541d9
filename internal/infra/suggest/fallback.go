package suggest

import (
	"fmt"
	"strings"

	"forkcast/internal/domain/entity"
)

// fallbackRecipes builds three deterministic suggestions around the first
// listed ingredient. Used whenever the upstream completion is unavailable.
func fallbackRecipes(ingredients string) []*entity.Recipe {
	main := firstIngredient(ingredients)
	title := titleCase(main)

	return []*entity.Recipe{
		{
			Name:        fmt.Sprintf("Simple %s Dish", title),
			Description: fmt.Sprintf("A quick and easy dish featuring %s.", main),
			Ingredients: []string{main, "olive oil", "salt", "pepper", "garlic"},
			Instructions: []string{
				fmt.Sprintf("Prepare the %s by washing and cutting as needed.", main),
				"Heat olive oil in a pan over medium heat.",
				fmt.Sprintf("Add the %s and cook until tender.", main),
				"Season with salt, pepper, and garlic to taste.",
				"Serve hot and enjoy.",
			},
			CookTime:   "20 minutes",
			Difficulty: "Easy",
		},
		{
			Name:        fmt.Sprintf("Healthy %s Bowl", title),
			Description: fmt.Sprintf("A nutritious bowl built around %s.", main),
			Ingredients: []string{main, "rice", "mixed greens", "lemon", "herbs"},
			Instructions: []string{
				"Cook rice according to package instructions.",
				fmt.Sprintf("Prepare the %s and arrange over the rice.", main),
				"Add mixed greens and fresh herbs.",
				"Squeeze lemon over the bowl before serving.",
			},
			CookTime:   "25 minutes",
			Difficulty: "Easy",
		},
		{
			Name:        fmt.Sprintf("Classic %s Recipe", title),
			Description: fmt.Sprintf("A traditional preparation of %s.", main),
			Ingredients: []string{main, "butter", "onion", "stock", "seasoning"},
			Instructions: []string{
				"Melt butter in a large pot over medium heat.",
				"Sauté the onion until translucent.",
				fmt.Sprintf("Add the %s and stock, then simmer.", main),
				"Season to taste and cook until done.",
				"Rest for a few minutes before serving.",
			},
			CookTime:   "35 minutes",
			Difficulty: "Medium",
		},
	}
}

// firstIngredient extracts the first comma-separated ingredient, defaulting
// to a generic label when the input is blank.
func firstIngredient(ingredients string) string {
	for _, part := range strings.Split(ingredients, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			return strings.ToLower(trimmed)
		}
	}

	return "mixed vegetables"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}
