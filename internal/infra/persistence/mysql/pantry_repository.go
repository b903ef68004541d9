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

// pantryRepository implements the domain.PantryRepository interface using GORM.
type pantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository is the constructor for pantryRepository.
func NewPantryRepository(db *gorm.DB) repository.PantryRepository {
	return &pantryRepository{db: db}
}

// ListByUser returns all pantry items for a user, most recent first.
func (repo *pantryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PantryItem, error) {
	var models []model.PantryItemModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list pantry items")
	}

	items := make([]*entity.PantryItem, 0, len(models))
	for i := range models {
		items = append(items, toPantryItemDomain(&models[i]))
	}

	return items, nil
}

// Create persists a new pantry item. The unique (user_id, ingredient) index
// turns concurrent duplicate adds into ErrIngredientExists.
func (repo *pantryRepository) Create(ctx context.Context, item *entity.PantryItem) error {
	itemM := fromPantryItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrIngredientExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add ingredient")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// DeleteByName removes an ingredient by its normalized name.
func (repo *pantryRepository) DeleteByName(ctx context.Context, userID uuid.UUID, ingredient string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND ingredient = ?", userID, ingredient).
		Delete(&model.PantryItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove ingredient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

// CountByUser returns the number of pantry items the user holds.
func (repo *pantryRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PantryItemModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count pantry items")
	}

	return count, nil
}

// toPantryItemDomain converts a GORM PantryItemModel to a domain PantryItem entity.
func toPantryItemDomain(data *model.PantryItemModel) *entity.PantryItem {
	if data == nil {
		return nil
	}

	return &entity.PantryItem{
		ID:         data.ID,
		UserID:     data.UserID,
		Ingredient: data.Ingredient,
		CreatedAt:  data.CreatedAt,
	}
}

// fromPantryItemDomain converts a domain PantryItem entity to a GORM PantryItemModel.
func fromPantryItemDomain(data *entity.PantryItem) *model.PantryItemModel {
	if data == nil {
		return nil
	}

	return &model.PantryItemModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Ingredient: data.Ingredient,
	}
}
