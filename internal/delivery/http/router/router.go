// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"forkcast/internal/delivery/http/middleware"
	"forkcast/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	PantryHandler  *handler.PantryHandler
	RecipeHandler  *handler.RecipeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	pantryHandler  *handler.PantryHandler
	recipeHandler  *handler.RecipeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		pantryHandler:  params.PantryHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Public routes
	api.GET("/health", handler.HealthCheck)
	api.POST("/register", r.accountHandler.Register)
	api.POST("/login", r.accountHandler.Login)

	// Routes that require authentication
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/profile", r.accountHandler.Profile)
		authed.GET("/stats", r.accountHandler.Stats)

		authed.GET("/ingredients", r.pantryHandler.List)
		authed.POST("/ingredients", r.pantryHandler.Add)
		authed.DELETE("/ingredients/:ingredient", r.pantryHandler.Remove)

		authed.POST("/recipes/search", r.recipeHandler.Search)

		authed.GET("/favorites", r.recipeHandler.Favorites)
		authed.POST("/favorites", r.recipeHandler.AddFavorite)

		authed.GET("/history", r.recipeHandler.History)
	}
}
