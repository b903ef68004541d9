package mysql

import (
	"context"
	"encoding/json"

	"forkcast/internal/domain/entity"
	domainerrors "forkcast/internal/domain/errors"
	"forkcast/internal/domain/repository"
	"forkcast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the domain.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// FindByID retrieves a single recipe by its unique ID.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	if err := repo.db.WithContext(ctx).First(&recipeM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindByName retrieves a recipe by its exact name.
func (repo *recipeRepository) FindByName(ctx context.Context, name string) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	if err := repo.db.WithContext(ctx).First(&recipeM, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by name")
	}

	return toRecipeDomain(&recipeM), nil
}

// Create persists a new recipe to the catalog.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("recipe name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt

	return nil
}

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
// Malformed stored JSON degrades to empty slices rather than failing the read.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Ingredients:  decodeStringList(data.Ingredients),
		Instructions: decodeStringList(data.Instructions),
		CookTime:     data.CookTime,
		Difficulty:   data.Difficulty,
		CreatedAt:    data.CreatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Ingredients:  encodeStringList(data.Ingredients),
		Instructions: encodeStringList(data.Instructions),
		CookTime:     data.CookTime,
		Difficulty:   data.Difficulty,
	}
}

func decodeStringList(raw string) []string {
	if raw == "" {
		return nil
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}

	return list
}

func encodeStringList(list []string) string {
	if len(list) == 0 {
		return "[]"
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}

	return string(raw)
}
