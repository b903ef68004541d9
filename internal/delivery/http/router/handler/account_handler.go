// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"forkcast/internal/delivery/http/middleware"
	"forkcast/internal/delivery/http/response"
	domainerrors "forkcast/internal/domain/errors"
	"forkcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// userIDFromContext reads the authenticated user ID set by the auth middleware.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("user ID missing from context")
	}

	return userID, nil
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid registration payload")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err, domainerrors.ErrValidationFailed)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.Auth{
		Message: "User registered successfully",
		Token:   output.Token,
		User:    response.NewUser(output.User),
	})
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid login payload")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err, domainerrors.ErrValidationFailed)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Auth{
		Message: "Login successful",
		Token:   output.Token,
		User:    response.NewUser(output.User),
	})
}

// Profile returns the authenticated user's account details.
func (h *AccountHandler) Profile(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.uc.Profile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Profile{User: response.NewUser(user)})
}

// Stats returns the authenticated user's activity counters.
func (h *AccountHandler) Stats(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.Stats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.StatsEnvelope{Stats: response.NewStats(stats)})
}
