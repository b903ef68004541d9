package impl

import (
	"context"
	"testing"

	"forkcast/internal/domain/entity"
	domainerrors "forkcast/internal/domain/errors"
	"forkcast/internal/domain/repository"
	mockRepo "forkcast/internal/mocks/repository"
	"forkcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pantryServiceFixtures struct {
	service    usecase.PantryUsecase
	pantryRepo *mockRepo.MockPantryRepository
}

func createTestPantryService(t *testing.T) pantryServiceFixtures {
	pantryRepo := mockRepo.NewMockPantryRepository(t)

	service := NewPantryService(PantryServiceParams{
		PantryRepo: pantryRepo,
		Logger:     newDiscardLogger(),
	})

	return pantryServiceFixtures{
		service:    service,
		pantryRepo: pantryRepo,
	}
}

func TestPantryService_ListIngredients_Success(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()

	items := []*entity.PantryItem{
		{UserID: userID, Ingredient: "basil"},
		{UserID: userID, Ingredient: "tomato"},
	}
	fx.pantryRepo.EXPECT().ListByUser(ctx, userID).Return(items, nil)

	ingredients, err := fx.service.ListIngredients(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, []string{"basil", "tomato"}, ingredients)
}

func TestPantryService_ListIngredients_Empty(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pantryRepo.EXPECT().ListByUser(ctx, userID).Return(nil, nil)

	ingredients, err := fx.service.ListIngredients(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, ingredients)
	assert.Empty(t, ingredients)
}

func TestPantryService_AddIngredient_NormalizesName(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pantryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PantryItem")).
		Run(func(ctx context.Context, item *entity.PantryItem) {
			assert.Equal(t, userID, item.UserID)
			assert.Equal(t, "fresh basil", item.Ingredient)
		}).
		Return(nil)

	added, err := fx.service.AddIngredient(ctx, userID, "  Fresh Basil  ")

	require.NoError(t, err)
	assert.Equal(t, "fresh basil", added)
}

func TestPantryService_AddIngredient_Blank(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()

	added, err := fx.service.AddIngredient(ctx, uuid.New(), "   ")

	require.Error(t, err)
	assert.Empty(t, added)
	assert.ErrorIs(t, err, domainerrors.ErrIngredientRequired)
}

func TestPantryService_AddIngredient_Duplicate(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pantryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PantryItem")).
		Return(repository.ErrIngredientExists)

	added, err := fx.service.AddIngredient(ctx, userID, "basil")

	require.Error(t, err)
	assert.Empty(t, added)
	assert.ErrorIs(t, err, domainerrors.ErrIngredientAlreadyAdded)
}

func TestPantryService_AddIngredient_RepositoryFailure(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pantryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PantryItem")).
		Return(errors.New("connection lost"))

	added, err := fx.service.AddIngredient(ctx, userID, "basil")

	require.Error(t, err)
	assert.Empty(t, added)
	assert.NotErrorIs(t, err, domainerrors.ErrIngredientAlreadyAdded)
}

func TestPantryService_RemoveIngredient_Success(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pantryRepo.EXPECT().DeleteByName(ctx, userID, "basil").Return(nil)

	err := fx.service.RemoveIngredient(ctx, userID, " Basil ")

	require.NoError(t, err)
}

func TestPantryService_RemoveIngredient_NotFound(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pantryRepo.EXPECT().
		DeleteByName(ctx, userID, "basil").
		Return(repository.ErrIngredientNotFound)

	err := fx.service.RemoveIngredient(ctx, userID, "basil")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIngredientNotFound)
}

func TestPantryService_RemoveIngredient_Blank(t *testing.T) {
	fx := createTestPantryService(t)

	ctx := context.Background()

	err := fx.service.RemoveIngredient(ctx, uuid.New(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIngredientRequired)
}
