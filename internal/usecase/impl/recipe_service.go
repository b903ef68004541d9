package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "forkcast/internal/delivery/context"
	"forkcast/internal/domain/entity"
	domainerrors "forkcast/internal/domain/errors"
	"forkcast/internal/domain/repository"
	"forkcast/internal/domain/service"
	"forkcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const historyLimit = 20

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	historyRepo  repository.HistoryRepository
	suggester    service.RecipeSuggester
	logger       *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	HistoryRepo  repository.HistoryRepository
	Suggester    service.RecipeSuggester
	Logger       *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		historyRepo:  params.HistoryRepo,
		suggester:    params.Suggester,
		logger:       params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search generates recipe suggestions, records the search, and persists new
// recipes to the catalog. Suggestion generation happens outside the
// transaction since the upstream call can take seconds.
func (srv *recipeService) Search(ctx context.Context, userID uuid.UUID, ingredients string) (*usecase.SearchOutput, error) {
	ingredients = strings.TrimSpace(ingredients)
	if ingredients == "" {
		return nil, domainerrors.ErrIngredientsRequired.WrapMessage("blank search input")
	}

	srv.log(ctx).Info("Searching recipes", slog.Any("userID", userID), slog.String("ingredients", ingredients))

	recipes, err := srv.suggester.Suggest(ctx, ingredients)
	if err != nil {
		srv.log(ctx).Error("Recipe suggestion failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate recipe suggestions")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		historyRepo := repoFactory.NewHistoryRepository()
		recipeRepo := repoFactory.NewRecipeRepository()

		record := &entity.SearchRecord{
			UserID:       userID,
			Ingredients:  ingredients,
			RecipesFound: len(recipes),
		}
		if err := historyRepo.Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to record search")
		}

		// Persist suggestions so favorites can reference them later.
		// Recipes are shared across users and deduplicated by name.
		for _, recipe := range recipes {
			existing, findErr := recipeRepo.FindByName(ctx, recipe.Name)
			if findErr == nil {
				recipe.ID = existing.ID
				recipe.CreatedAt = existing.CreatedAt

				continue
			}
			if !errors.Is(findErr, repository.ErrRecipeNotFound) {
				return errors.Wrap(findErr, "failed to check recipe catalog")
			}
			if createErr := recipeRepo.Create(ctx, recipe); createErr != nil {
				return errors.Wrap(createErr, "failed to persist suggested recipe")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute search transaction", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Search completed", slog.Any("userID", userID), slog.Int("recipes", len(recipes)))

	return &usecase.SearchOutput{
		Recipes:     recipes,
		Ingredients: ingredients,
	}, nil
}

// Favorites returns the user's saved recipes, most recent first.
func (srv *recipeService) Favorites(ctx context.Context, userID uuid.UUID) ([]entity.RecipeSummary, error) {
	favorites, err := srv.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorites", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// AddFavorite saves a recipe to the user's favorites. The recipe is created
// in the shared catalog when it does not yet exist (find-or-create by name).
func (srv *recipeService) AddFavorite(ctx context.Context, userID uuid.UUID, input usecase.FavoriteRecipeInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerrors.ErrRecipeNameRequired.WrapMessage("blank recipe name")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.NewRecipeRepository()
		favoriteRepo := repoFactory.NewFavoriteRepository()

		recipe, findErr := recipeRepo.FindByName(ctx, name)
		if errors.Is(findErr, repository.ErrRecipeNotFound) {
			recipe = &entity.Recipe{
				Name:         name,
				Description:  input.Description,
				Ingredients:  input.Ingredients,
				Instructions: input.Instructions,
				CookTime:     input.CookTime,
				Difficulty:   input.Difficulty,
			}
			if createErr := recipeRepo.Create(ctx, recipe); createErr != nil {
				return errors.Wrap(createErr, "failed to create recipe for favorite")
			}
		} else if findErr != nil {
			return errors.Wrap(findErr, "failed to look up recipe for favorite")
		}

		favorite := &entity.Favorite{
			UserID:   userID,
			RecipeID: recipe.ID,
		}
		if createErr := favoriteRepo.Create(ctx, favorite); createErr != nil {
			if errors.Is(createErr, repository.ErrFavoriteExists) {
				return domainerrors.ErrRecipeAlreadyFavorite.WrapMessage("duplicate favorite")
			}

			return errors.Wrap(createErr, "failed to save favorite")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add favorite", slog.Any("userID", userID), slog.String("recipe", name), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Favorite added", slog.Any("userID", userID), slog.String("recipe", name))

	return nil
}

// History returns the user's most recent searches, newest first.
func (srv *recipeService) History(ctx context.Context, userID uuid.UUID) ([]*entity.SearchRecord, error) {
	records, err := srv.historyRepo.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to list history", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list search history")
	}

	return records, nil
}
