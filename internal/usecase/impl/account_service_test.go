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

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	pantryRepo   *mockRepo.MockPantryRepository
	favoriteRepo *mockRepo.MockFavoriteRepository
	historyRepo  *mockRepo.MockHistoryRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pantryRepo := mockRepo.NewMockPantryRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	historyRepo := mockRepo.NewMockHistoryRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		PantryRepo:   pantryRepo,
		FavoriteRepo: favoriteRepo,
		HistoryRepo:  historyRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(6),
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		pantryRepo:   pantryRepo,
		favoriteRepo: favoriteRepo,
		historyRepo:  historyRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test User",
		Email:    "Test@Example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			// Email is normalized before it reaches the repository.
			mockUserRepo.EXPECT().
				FindByEmail(ctx, "test@example.com").
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID")).
		Return("access_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.Token)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "Test User", output.User.Name)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAccountService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	testCases := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{"missing name", usecase.RegisterInput{Email: "test@example.com", Password: "password123"}},
		{"missing email", usecase.RegisterInput{Name: "Test User", Password: "password123"}},
		{"missing password", usecase.RegisterInput{Name: "Test User", Email: "test@example.com"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := fx.service.Register(ctx, tc.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAccountService_Register_InvalidEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test User",
		Email:    "not-an-email",
		Password: "password123",
	}

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
}

func TestAccountService_Register_PasswordTooShort(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "short",
	}

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("password123", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateToken(userID).Return("access_token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "Test@Example.com ",
		Password: "password123",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "unknown@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "unknown@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong_password", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong_password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Profile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com", Name: "Test User"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	result, err := fx.service.Profile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, result)
}

func TestAccountService_Profile_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	result, err := fx.service.Profile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_Stats_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	items := []*entity.PantryItem{
		{UserID: userID, Ingredient: "tomato"},
		{UserID: userID, Ingredient: "basil"},
		{UserID: userID, Ingredient: "garlic"},
		{UserID: userID, Ingredient: "onion"},
		{UserID: userID, Ingredient: "pasta"},
		{UserID: userID, Ingredient: "olive oil"},
		{UserID: userID, Ingredient: "cheese"},
	}
	lastSearch := &entity.SearchRecord{
		UserID:       userID,
		Ingredients:  "tomato, basil",
		RecipesFound: 3,
		SearchTime:   time.Now(),
	}

	fx.pantryRepo.EXPECT().CountByUser(ctx, userID).Return(int64(7), nil)
	fx.favoriteRepo.EXPECT().CountByUser(ctx, userID).Return(int64(2), nil)
	fx.historyRepo.EXPECT().CountByUser(ctx, userID).Return(int64(5), nil)
	fx.pantryRepo.EXPECT().ListByUser(ctx, userID).Return(items, nil)
	fx.historyRepo.EXPECT().ListByUser(ctx, userID, 1).Return([]*entity.SearchRecord{lastSearch}, nil)

	stats, err := fx.service.Stats(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 7, stats.TotalIngredients)
	assert.Equal(t, 2, stats.TotalFavorites)
	assert.Equal(t, 5, stats.TotalSearches)
	// Recent ingredients cap at five, preserving the repository's ordering.
	assert.Equal(t, []string{"tomato", "basil", "garlic", "onion", "pasta"}, stats.RecentIngredients)
	assert.Equal(t, lastSearch, stats.LastSearch)
}

func TestAccountService_Stats_NoActivity(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pantryRepo.EXPECT().CountByUser(ctx, userID).Return(int64(0), nil)
	fx.favoriteRepo.EXPECT().CountByUser(ctx, userID).Return(int64(0), nil)
	fx.historyRepo.EXPECT().CountByUser(ctx, userID).Return(int64(0), nil)
	fx.pantryRepo.EXPECT().ListByUser(ctx, userID).Return(nil, nil)
	fx.historyRepo.EXPECT().ListByUser(ctx, userID, 1).Return(nil, nil)

	stats, err := fx.service.Stats(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Zero(t, stats.TotalIngredients)
	assert.Empty(t, stats.RecentIngredients)
	assert.Nil(t, stats.LastSearch)
}
