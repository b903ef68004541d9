// Package api is the typed HTTP client for the server's /api surface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"forkcast/internal/client/session"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// Client issues JSON requests against a fixed base URL, attaching the stored
// bearer token when the session holds one.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    session.TokenStore
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func New(baseURL string, store session.TokenStore, logger *slog.Logger, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    store,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

// do sends one JSON request and decodes the response into out (when non-nil).
// Non-2xx responses become *RequestError; anything that prevents interpreting
// a response becomes *TransportError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: "encode request", Err: err}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.requestError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &TransportError{Op: "decode response", Err: err}
		}
	}

	return nil
}

func (c *Client) requestError(status int, data []byte) *RequestError {
	var body errorResponse
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return &RequestError{Status: status, Message: body.Error}
	}

	return &RequestError{Status: status, Message: fmt.Sprintf("request failed with status %d", status)}
}

// Register creates an account and persists the returned token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/api/register",
		registerRequest{Name: name, Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}

	if err := c.session.SetToken(out.Token); err != nil {
		c.logger.Warn("failed to persist session token", slog.Any("error", err))
	}

	return &out, nil
}

// Login authenticates and persists the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/api/login",
		loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}

	if err := c.session.SetToken(out.Token); err != nil {
		c.logger.Warn("failed to persist session token", slog.Any("error", err))
	}

	return &out, nil
}

// Logout discards the local session. The server keeps no session state, so no
// request is made.
func (c *Client) Logout() error {
	return errors.WithStack(c.session.Clear())
}

// SearchRecipes asks the server for recipes matching a free-text ingredient
// list.
func (c *Client) SearchRecipes(ctx context.Context, ingredients string) (*SearchResult, error) {
	var out SearchResult
	if err := c.do(ctx, http.MethodPost, "/api/recipes/search", searchRequest{Ingredients: ingredients}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Ingredients lists the pantry.
func (c *Client) Ingredients(ctx context.Context) ([]string, error) {
	var out ingredientsResponse
	if err := c.do(ctx, http.MethodGet, "/api/ingredients", nil, &out); err != nil {
		return nil, err
	}

	return out.Ingredients, nil
}

// AddIngredient adds one ingredient and returns its normalized form.
func (c *Client) AddIngredient(ctx context.Context, name string) (string, error) {
	var out ingredientAddedResponse
	if err := c.do(ctx, http.MethodPost, "/api/ingredients", addIngredientRequest{Ingredient: name}, &out); err != nil {
		return "", err
	}

	return out.Ingredient, nil
}

// RemoveIngredient removes one ingredient by name. The name travels in the
// URL path and is escaped here.
func (c *Client) RemoveIngredient(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/ingredients/"+url.PathEscape(name), nil, nil)
}

// Favorites lists the saved recipes.
func (c *Client) Favorites(ctx context.Context) ([]RecipeSummary, error) {
	var out favoritesResponse
	if err := c.do(ctx, http.MethodGet, "/api/favorites", nil, &out); err != nil {
		return nil, err
	}

	return out.Favorites, nil
}

// AddFavorite saves a recipe.
func (c *Client) AddFavorite(ctx context.Context, recipe Recipe) error {
	return c.do(ctx, http.MethodPost, "/api/favorites", addFavoriteRequest{Recipe: recipe}, nil)
}

// History lists recent searches, newest first.
func (c *Client) History(ctx context.Context) ([]HistoryEntry, error) {
	var out historyResponse
	if err := c.do(ctx, http.MethodGet, "/api/history", nil, &out); err != nil {
		return nil, err
	}

	return out.History, nil
}

// Profile fetches the authenticated user. It doubles as the token validity
// check during startup.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out profileResponse
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// Stats fetches the activity summary.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out statsResponse
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}

	return &out.Stats, nil
}

// Health calls the unauthenticated health endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
