package handler

import (
	"log/slog"
	"net/http"

	"forkcast/internal/delivery/http/response"
	domainerrors "forkcast/internal/domain/errors"
	"forkcast/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for search, favorites and history handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

type searchRequest struct {
	Ingredients string `json:"ingredients" validate:"required"`
}

type favoriteRecipePayload struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	CookTime     string   `json:"cook_time"`
	Difficulty   string   `json:"difficulty"`
}

type addFavoriteRequest struct {
	Recipe favoriteRecipePayload `json:"recipe"`
}

// Search generates recipe suggestions for the given ingredients.
func (h *RecipeHandler) Search(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid search payload")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err, domainerrors.ErrIngredientsRequired)
	}

	output, err := h.uc.Search(c.Request().Context(), userID, req.Ingredients)
	if err != nil {
		return errors.WithStack(err)
	}

	recipes := response.NewRecipes(output.Recipes)

	return c.JSON(http.StatusOK, response.Search{
		Recipes:         recipes,
		Total:           len(recipes),
		IngredientsUsed: output.Ingredients,
	})
}

// Favorites returns the authenticated user's saved recipes.
func (h *RecipeHandler) Favorites(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	favorites, err := h.uc.Favorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Favorites{
		Favorites: response.NewRecipeSummaries(favorites),
	})
}

// AddFavorite saves a recipe to the authenticated user's favorites.
func (h *RecipeHandler) AddFavorite(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid favorite payload")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err, domainerrors.ErrRecipeNameRequired)
	}

	err = h.uc.AddFavorite(c.Request().Context(), userID, usecase.FavoriteRecipeInput{
		Name:         req.Recipe.Name,
		Description:  req.Recipe.Description,
		Ingredients:  req.Recipe.Ingredients,
		Instructions: req.Recipe.Instructions,
		CookTime:     req.Recipe.CookTime,
		Difficulty:   req.Recipe.Difficulty,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.Message{Message: "Recipe added to favorites"})
}

// History returns the authenticated user's recent searches.
func (h *RecipeHandler) History(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	records, err := h.uc.History(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewHistory(records))
}
