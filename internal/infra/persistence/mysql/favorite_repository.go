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

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// ListByUser returns summaries of the user's favorited recipes, most recent first.
func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.RecipeSummary, error) {
	var models []model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list favorites")
	}

	summaries := make([]entity.RecipeSummary, 0, len(models))
	for i := range models {
		recipe := models[i].Recipe
		if recipe == nil {
			continue
		}
		summaries = append(summaries, entity.RecipeSummary{
			ID:          recipe.ID,
			Name:        recipe.Name,
			Description: recipe.Description,
			CookTime:    recipe.CookTime,
			Difficulty:  recipe.Difficulty,
		})
	}

	return summaries, nil
}

// Create persists a new favorite. The unique (user_id, recipe_id) index turns
// concurrent duplicate favorites into ErrFavoriteExists.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		ID:       favorite.ID,
		UserID:   favorite.UserID,
		RecipeID: favorite.RecipeID,
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrFavoriteExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "favorite references missing recipe")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// CountByUser returns the number of recipes the user has favorited.
func (repo *favoriteRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count favorites")
	}

	return count, nil
}
