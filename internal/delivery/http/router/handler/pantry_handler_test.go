package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"forkcast/internal/delivery/http/middleware"
	domainerrors "forkcast/internal/domain/errors"
	mockUC "forkcast/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPantryHandler_List(t *testing.T) {
	uc := mockUC.NewMockPantryUsecase(t)
	h := NewPantryHandler(uc, newTestLogger())

	userID := uuid.New()
	uc.EXPECT().ListIngredients(mock.Anything, userID).Return([]string{"basil", "tomato"}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/ingredients", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ingredients":["basil","tomato"]}`, rec.Body.String())
}

func TestPantryHandler_Add(t *testing.T) {
	uc := mockUC.NewMockPantryUsecase(t)
	h := NewPantryHandler(uc, newTestLogger())

	userID := uuid.New()
	uc.EXPECT().AddIngredient(mock.Anything, userID, " Basil ").Return("basil", nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/ingredients", `{"ingredient":" Basil "}`)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ingredient added successfully", body["message"])
	assert.Equal(t, "basil", body["ingredient"])
}

func TestPantryHandler_Add_MissingIngredient(t *testing.T) {
	uc := mockUC.NewMockPantryUsecase(t)
	h := NewPantryHandler(uc, newTestLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/ingredients", `{}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.Add(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIngredientRequired)
	uc.AssertNotCalled(t, "AddIngredient", mock.Anything, mock.Anything, mock.Anything)
}

func TestPantryHandler_Add_Duplicate(t *testing.T) {
	uc := mockUC.NewMockPantryUsecase(t)
	h := NewPantryHandler(uc, newTestLogger())

	userID := uuid.New()
	uc.EXPECT().
		AddIngredient(mock.Anything, userID, "basil").
		Return("", domainerrors.ErrIngredientAlreadyAdded)

	c, _ := newJSONContext(t, http.MethodPost, "/api/ingredients", `{"ingredient":"basil"}`)
	c.Set(middleware.ContextKeyUserID, userID)

	err := h.Add(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIngredientAlreadyAdded)
}

func TestPantryHandler_Remove(t *testing.T) {
	uc := mockUC.NewMockPantryUsecase(t)
	h := NewPantryHandler(uc, newTestLogger())

	userID := uuid.New()
	uc.EXPECT().RemoveIngredient(mock.Anything, userID, "olive oil").Return(nil)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/ingredients/olive%20oil", "")
	c.Set(middleware.ContextKeyUserID, userID)
	c.SetParamNames("ingredient")
	c.SetParamValues("olive%20oil")

	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Ingredient removed successfully"}`, rec.Body.String())
}

func TestPantryHandler_Remove_NotFound(t *testing.T) {
	uc := mockUC.NewMockPantryUsecase(t)
	h := NewPantryHandler(uc, newTestLogger())

	userID := uuid.New()
	uc.EXPECT().
		RemoveIngredient(mock.Anything, userID, "basil").
		Return(domainerrors.ErrIngredientNotFound)

	c, _ := newJSONContext(t, http.MethodDelete, "/api/ingredients/basil", "")
	c.Set(middleware.ContextKeyUserID, userID)
	c.SetParamNames("ingredient")
	c.SetParamValues("basil")

	err := h.Remove(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIngredientNotFound)
}
