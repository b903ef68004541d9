package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "forkcast/internal/delivery/context"
	"forkcast/internal/domain/entity"
	domainerrors "forkcast/internal/domain/errors"
	"forkcast/internal/domain/repository"
	"forkcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pantryService implements the PantryUsecase interface.
type pantryService struct {
	pantryRepo repository.PantryRepository
	logger     *slog.Logger
}

// PantryServiceParams holds dependencies for pantryService, injected by Fx.
type PantryServiceParams struct {
	fx.In

	PantryRepo repository.PantryRepository
	Logger     *slog.Logger
}

// NewPantryService is the constructor for pantryService.
func NewPantryService(params PantryServiceParams) usecase.PantryUsecase {
	return &pantryService{
		pantryRepo: params.PantryRepo,
		logger:     params.Logger,
	}
}

func (srv *pantryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListIngredients returns the user's ingredients, most recently added first.
func (srv *pantryService) ListIngredients(ctx context.Context, userID uuid.UUID) ([]string, error) {
	items, err := srv.pantryRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list ingredients", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ingredients := make([]string, 0, len(items))
	for _, item := range items {
		ingredients = append(ingredients, item.Ingredient)
	}

	return ingredients, nil
}

// AddIngredient normalizes and stores a new ingredient.
// Names are trimmed and lowercased so "Basil" and "basil" collide.
func (srv *pantryService) AddIngredient(ctx context.Context, userID uuid.UUID, ingredient string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(ingredient))
	if normalized == "" {
		return "", domainerrors.ErrIngredientRequired.WrapMessage("blank ingredient")
	}

	item := &entity.PantryItem{
		UserID:     userID,
		Ingredient: normalized,
	}
	if err := srv.pantryRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrIngredientExists) {
			srv.log(ctx).Debug("Duplicate ingredient", slog.Any("userID", userID), slog.String("ingredient", normalized))

			return "", domainerrors.ErrIngredientAlreadyAdded.WrapMessage("duplicate ingredient")
		}
		srv.log(ctx).Error("Failed to add ingredient", slog.Any("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to add ingredient")
	}

	srv.log(ctx).Debug("Ingredient added", slog.Any("userID", userID), slog.String("ingredient", normalized))

	return normalized, nil
}

// RemoveIngredient deletes an ingredient by name.
func (srv *pantryService) RemoveIngredient(ctx context.Context, userID uuid.UUID, ingredient string) error {
	normalized := strings.ToLower(strings.TrimSpace(ingredient))
	if normalized == "" {
		return domainerrors.ErrIngredientRequired.WrapMessage("blank ingredient")
	}

	if err := srv.pantryRepo.DeleteByName(ctx, userID, normalized); err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return domainerrors.ErrIngredientNotFound.WrapMessage("ingredient not in pantry")
		}
		srv.log(ctx).Error("Failed to remove ingredient", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove ingredient")
	}

	srv.log(ctx).Debug("Ingredient removed", slog.Any("userID", userID), slog.String("ingredient", normalized))

	return nil
}
