package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"forkcast/internal/delivery/http/middleware"
	echovalidator "forkcast/internal/delivery/http/validator"
	"forkcast/internal/domain/entity"
	domainerrors "forkcast/internal/domain/errors"
	mockUC "forkcast/internal/mocks/usecase"
	"forkcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = echovalidator.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	userID := uuid.New()
	uc.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "password123",
		}).
		Return(&usecase.AuthOutput{
			Token: "access_token",
			User: &entity.User{
				ID:        userID,
				Name:      "Test User",
				Email:     "test@example.com",
				CreatedAt: time.Now(),
			},
		}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/register",
		`{"name":"Test User","email":"test@example.com","password":"password123"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, "access_token", body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, userID.String(), user["id"])
	assert.Equal(t, "test@example.com", user["email"])
}

func TestAccountHandler_Register_EmailTaken(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("usecase.RegisterInput")).
		Return(nil, domainerrors.ErrEmailAlreadyRegistered)

	c, _ := newJSONContext(t, http.MethodPost, "/api/register",
		`{"name":"Test User","email":"taken@example.com","password":"password123"}`)

	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountHandler_Register_MissingFields(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/register",
		`{"name":"Test User","password":"password123"}`)

	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAccountHandler_Register_InvalidEmail(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/register",
		`{"name":"Test User","email":"not-an-email","password":"password123"}`)

	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAccountHandler_Register_PasswordTooShort(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/register",
		`{"name":"Test User","email":"test@example.com","password":"tiny"}`)

	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAccountHandler_Login_MissingPassword(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/login",
		`{"email":"test@example.com"}`)

	err := h.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAccountHandler_Login(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{
			Email:    "test@example.com",
			Password: "password123",
		}).
		Return(&usecase.AuthOutput{
			Token: "access_token",
			User:  &entity.User{ID: uuid.New(), Email: "test@example.com", Name: "Test User"},
		}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/login",
		`{"email":"test@example.com","password":"password123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "access_token", body["token"])
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := newJSONContext(t, http.MethodPost, "/api/login",
		`{"email":"test@example.com","password":"nope"}`)

	err := h.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountHandler_Profile(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	userID := uuid.New()
	uc.EXPECT().
		Profile(mock.Anything, userID).
		Return(&entity.User{ID: userID, Name: "Test User", Email: "test@example.com"}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/profile", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Profile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Test User", user["name"])
}

func TestAccountHandler_Profile_MissingUserID(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	c, _ := newJSONContext(t, http.MethodGet, "/api/profile", "")

	err := h.Profile(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAccountHandler_Stats(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newTestLogger())

	userID := uuid.New()
	uc.EXPECT().
		Stats(mock.Anything, userID).
		Return(&entity.UserStats{
			TotalIngredients:  3,
			TotalFavorites:    1,
			TotalSearches:     4,
			RecentIngredients: []string{"basil", "tomato"},
		}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/stats", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), stats["total_ingredients"])
	assert.Nil(t, stats["last_search"])
}
