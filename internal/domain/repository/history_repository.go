package repository

import (
	"context"

	"forkcast/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryRepository defines the standard operations for search history.
type HistoryRepository interface {
	// Create persists a new search record.
	Create(ctx context.Context, record *entity.SearchRecord) error

	// ListByUser returns up to limit history entries for a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SearchRecord, error)

	// CountByUser returns the number of searches the user ever ran.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
