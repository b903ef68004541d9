// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's email, used as the login identifier.
	Name         string    // The user's display name.
	PasswordHash string    // The bcrypt-hashed password credential.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// UserStats aggregates a user's activity counters for the stats endpoint.
type UserStats struct {
	TotalIngredients  int           // Number of ingredients currently in the pantry.
	TotalFavorites    int           // Number of favorited recipes.
	TotalSearches     int           // Number of recipe searches ever performed.
	RecentIngredients []string      // Up to five most recently added ingredients.
	LastSearch        *SearchRecord // The most recent search, nil when the user never searched.
}
