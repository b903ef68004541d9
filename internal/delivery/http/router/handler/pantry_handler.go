package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"forkcast/internal/delivery/http/response"
	domainerrors "forkcast/internal/domain/errors"
	"forkcast/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PantryHandler holds dependencies for ingredient-related handlers.
type PantryHandler struct {
	uc     usecase.PantryUsecase
	logger *slog.Logger
}

// NewPantryHandler is the constructor for PantryHandler, injected by Fx.
func NewPantryHandler(uc usecase.PantryUsecase, logger *slog.Logger) *PantryHandler {
	return &PantryHandler{
		uc:     uc,
		logger: logger,
	}
}

type addIngredientRequest struct {
	Ingredient string `json:"ingredient" validate:"required"`
}

// List returns the authenticated user's ingredients.
func (h *PantryHandler) List(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	ingredients, err := h.uc.ListIngredients(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Ingredients{Ingredients: ingredients})
}

// Add stores a new ingredient for the authenticated user.
func (h *PantryHandler) Add(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req addIngredientRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid ingredient payload")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err, domainerrors.ErrIngredientRequired)
	}

	added, err := h.uc.AddIngredient(c.Request().Context(), userID, req.Ingredient)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.IngredientAdded{
		Message:    "Ingredient added successfully",
		Ingredient: added,
	})
}

// Remove deletes an ingredient by name. The name arrives URL-encoded in the path.
func (h *PantryHandler) Remove(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	ingredient := c.Param("ingredient")
	if decoded, decodeErr := url.PathUnescape(ingredient); decodeErr == nil {
		ingredient = decoded
	}

	if err := h.uc.RemoveIngredient(c.Request().Context(), userID, ingredient); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Message{Message: "Ingredient removed successfully"})
}
