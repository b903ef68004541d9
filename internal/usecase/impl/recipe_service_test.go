package impl

import (
	"context"
	"testing"
	"time"

	"forkcast/internal/domain/entity"
	domainerrors "forkcast/internal/domain/errors"
	"forkcast/internal/domain/repository"
	mockRepo "forkcast/internal/mocks/repository"
	mockSvc "forkcast/internal/mocks/service"
	"forkcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeServiceFixtures struct {
	service      usecase.RecipeUsecase
	txManager    *mockRepo.MockTransactionManager
	favoriteRepo *mockRepo.MockFavoriteRepository
	historyRepo  *mockRepo.MockHistoryRepository
	suggester    *mockSvc.MockRecipeSuggester
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	historyRepo := mockRepo.NewMockHistoryRepository(t)
	suggester := mockSvc.NewMockRecipeSuggester(t)

	service := NewRecipeService(RecipeServiceParams{
		TxManager:    txManager,
		FavoriteRepo: favoriteRepo,
		HistoryRepo:  historyRepo,
		Suggester:    suggester,
		Logger:       newDiscardLogger(),
	})

	return recipeServiceFixtures{
		service:      service,
		txManager:    txManager,
		favoriteRepo: favoriteRepo,
		historyRepo:  historyRepo,
		suggester:    suggester,
	}
}

func suggestedRecipes() []*entity.Recipe {
	return []*entity.Recipe{
		{
			Name:         "Tomato Basil Pasta",
			Description:  "A quick weeknight pasta.",
			Ingredients:  []string{"tomato", "basil", "pasta"},
			Instructions: []string{"Boil pasta.", "Toss with tomato and basil."},
			CookTime:     "20 minutes",
			Difficulty:   "Easy",
		},
		{
			Name:         "Caprese Salad",
			Description:  "Fresh and simple.",
			Ingredients:  []string{"tomato", "basil", "mozzarella"},
			Instructions: []string{"Slice.", "Layer.", "Drizzle."},
			CookTime:     "10 minutes",
			Difficulty:   "Easy",
		},
	}
}

func TestRecipeService_Search_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipes := suggestedRecipes()

	fx.suggester.EXPECT().Suggest(ctx, "tomato, basil").Return(recipes, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockHistoryRepo := mockRepo.NewMockHistoryRepository(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().NewHistoryRepository().Return(mockHistoryRepo)
			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)

			mockHistoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.SearchRecord")).
				Run(func(ctx context.Context, record *entity.SearchRecord) {
					assert.Equal(t, userID, record.UserID)
					assert.Equal(t, "tomato, basil", record.Ingredients)
					assert.Equal(t, 2, record.RecipesFound)
				}).
				Return(nil)

			// Both suggestions are new to the catalog.
			mockRecipeRepo.EXPECT().
				FindByName(ctx, mock.AnythingOfType("string")).
				Return(nil, repository.ErrRecipeNotFound).
				Twice()
			mockRecipeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Recipe")).
				Return(nil).
				Twice()

			return fn(mockFactory)
		})

	output, err := fx.service.Search(ctx, userID, " tomato, basil ")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Len(t, output.Recipes, 2)
	assert.Equal(t, "tomato, basil", output.Ingredients)
}

func TestRecipeService_Search_ReusesExistingRecipe(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipes := suggestedRecipes()[:1]

	existingID := uuid.New()
	existingCreatedAt := time.Now().Add(-24 * time.Hour)

	fx.suggester.EXPECT().Suggest(ctx, "tomato").Return(recipes, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockHistoryRepo := mockRepo.NewMockHistoryRepository(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().NewHistoryRepository().Return(mockHistoryRepo)
			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)

			mockHistoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.SearchRecord")).
				Return(nil)

			mockRecipeRepo.EXPECT().
				FindByName(ctx, "Tomato Basil Pasta").
				Return(&entity.Recipe{ID: existingID, Name: "Tomato Basil Pasta", CreatedAt: existingCreatedAt}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Search(ctx, userID, "tomato")

	require.NoError(t, err)
	require.Len(t, output.Recipes, 1)
	assert.Equal(t, existingID, output.Recipes[0].ID)
	assert.Equal(t, existingCreatedAt, output.Recipes[0].CreatedAt)
}

func TestRecipeService_Search_BlankIngredients(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	output, err := fx.service.Search(ctx, uuid.New(), "   ")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrIngredientsRequired)
}

func TestRecipeService_Search_SuggesterFailure(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.suggester.EXPECT().Suggest(ctx, "tomato").Return(nil, errors.New("upstream unavailable"))

	output, err := fx.service.Search(ctx, userID, "tomato")

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestRecipeService_Favorites_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()

	favorites := []entity.RecipeSummary{
		{ID: uuid.New(), Name: "Caprese Salad", Description: "Fresh and simple."},
	}
	fx.favoriteRepo.EXPECT().ListByUser(ctx, userID).Return(favorites, nil)

	result, err := fx.service.Favorites(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, favorites, result)
}

func TestRecipeService_AddFavorite_NewRecipe(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipeID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)
			mockFactory.EXPECT().NewFavoriteRepository().Return(mockFavoriteRepo)

			mockRecipeRepo.EXPECT().
				FindByName(ctx, "Tomato Basil Pasta").
				Return(nil, repository.ErrRecipeNotFound)

			mockRecipeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Recipe")).
				Run(func(ctx context.Context, recipe *entity.Recipe) {
					recipe.ID = recipeID
				}).
				Return(nil)

			mockFavoriteRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Favorite")).
				Run(func(ctx context.Context, favorite *entity.Favorite) {
					assert.Equal(t, userID, favorite.UserID)
					assert.Equal(t, recipeID, favorite.RecipeID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.AddFavorite(ctx, userID, usecase.FavoriteRecipeInput{
		Name:        " Tomato Basil Pasta ",
		Description: "A quick weeknight pasta.",
	})

	require.NoError(t, err)
}

func TestRecipeService_AddFavorite_Duplicate(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipeID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().NewRecipeRepository().Return(mockRecipeRepo)
			mockFactory.EXPECT().NewFavoriteRepository().Return(mockFavoriteRepo)

			mockRecipeRepo.EXPECT().
				FindByName(ctx, "Caprese Salad").
				Return(&entity.Recipe{ID: recipeID, Name: "Caprese Salad"}, nil)

			mockFavoriteRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Favorite")).
				Return(repository.ErrFavoriteExists)

			return fn(mockFactory)
		})

	err := fx.service.AddFavorite(ctx, userID, usecase.FavoriteRecipeInput{Name: "Caprese Salad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRecipeAlreadyFavorite)
}

func TestRecipeService_AddFavorite_BlankName(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	err := fx.service.AddFavorite(ctx, uuid.New(), usecase.FavoriteRecipeInput{Name: "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRecipeNameRequired)
}

func TestRecipeService_History_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()

	records := []*entity.SearchRecord{
		{UserID: userID, Ingredients: "tomato, basil", RecipesFound: 3},
		{UserID: userID, Ingredients: "chicken", RecipesFound: 3},
	}
	fx.historyRepo.EXPECT().ListByUser(ctx, userID, 20).Return(records, nil)

	result, err := fx.service.History(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, records, result)
}

func TestRecipeService_History_RepositoryFailure(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.historyRepo.EXPECT().
		ListByUser(ctx, userID, 20).
		Return(nil, errors.New("connection lost"))

	result, err := fx.service.History(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, result)
}
