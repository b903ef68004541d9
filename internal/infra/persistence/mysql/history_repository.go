package mysql

import (
	"context"

	"forkcast/internal/domain/entity"
	domainerrors "forkcast/internal/domain/errors"
	"forkcast/internal/domain/repository"
	"forkcast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// historyRepository implements the domain.HistoryRepository interface using GORM.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

// Create persists a new search record.
func (repo *historyRepository) Create(ctx context.Context, record *entity.SearchRecord) error {
	recordM := &model.SearchHistoryModel{
		ID:           record.ID,
		UserID:       record.UserID,
		Ingredients:  record.Ingredients,
		RecipesFound: record.RecipesFound,
		SearchTime:   record.SearchTime,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record search")
	}

	record.ID = recordM.ID
	record.SearchTime = recordM.SearchTime

	return nil
}

// ListByUser returns up to limit history entries for a user, newest first.
func (repo *historyRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SearchRecord, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("search_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.SearchHistoryModel
	if err := query.Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list search history")
	}

	records := make([]*entity.SearchRecord, 0, len(models))
	for i := range models {
		records = append(records, &entity.SearchRecord{
			ID:           models[i].ID,
			UserID:       models[i].UserID,
			Ingredients:  models[i].Ingredients,
			RecipesFound: models[i].RecipesFound,
			SearchTime:   models[i].SearchTime,
		})
	}

	return records, nil
}

// CountByUser returns the number of searches the user ever ran.
func (repo *historyRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SearchHistoryModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count searches")
	}

	return count, nil
}
