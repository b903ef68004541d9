package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory TokenStore for tests.
type memoryStore struct {
	token string
}

func (s *memoryStore) Token() (string, bool) {
	return s.token, s.token != ""
}

func (s *memoryStore) SetToken(token string) error {
	s.token = token

	return nil
}

func (s *memoryStore) Clear() error {
	s.token = ""

	return nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *memoryStore) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := &memoryStore{}

	return New(server.URL, store, newDiscardLogger()), store
}

func TestClient_Register_PersistsToken(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Test User", body["name"])
		assert.Equal(t, "test@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"message": "User registered successfully",
			"token": "issued-token",
			"user": {"id":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","name":"Test User","email":"test@example.com"}
		}`))
	})

	result, err := client.Register(context.Background(), "Test User", "test@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", result.Message)
	assert.Equal(t, "Test User", result.User.Name)
	assert.Equal(t, "issued-token", store.token)
}

func TestClient_Login_PersistsToken(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Login successful","token":"fresh-token","user":{"name":"Test User"}}`))
	})

	result, err := client.Login(context.Background(), "test@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "Login successful", result.Message)
	assert.Equal(t, "fresh-token", store.token)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ingredients":["basil","tomato"]}`))
	})
	require.NoError(t, store.SetToken("stored-token"))

	ingredients, err := client.Ingredients(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"basil", "tomato"}, ingredients)
}

func TestClient_NoBearerWithoutToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","version":"1.0.0"}`))
	})

	health, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
}

func TestClient_RequestError_UsesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Email already registered"}`))
	})

	_, err := client.Register(context.Background(), "Test User", "taken@example.com", "secret123")

	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusConflict, reqErr.Status)
	assert.Equal(t, "Email already registered", reqErr.Message)
}

func TestClient_RequestError_FallbackMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := client.Ingredients(context.Background())

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadGateway, reqErr.Status)
	assert.Equal(t, "request failed with status 502", reqErr.Message)
}

func TestClient_RequestError_Unauthorized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Token has expired"}`))
	})

	_, err := client.Profile(context.Background())

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.True(t, reqErr.IsUnauthorized())
	assert.Equal(t, "Token has expired", reqErr.Message)
}

func TestClient_TransportError_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := New(server.URL, &memoryStore{}, newDiscardLogger())

	_, err := client.Ingredients(context.Background())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestClient_TransportError_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ingredients": not-json`))
	})

	_, err := client.Ingredients(context.Background())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestClient_SearchRecipes(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes/search", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tomato, basil", body["ingredients"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"recipes": [{"name":"Tomato Basil Pasta","cook_time":"20 minutes","difficulty":"Easy"}],
			"total": 1,
			"ingredients_used": "tomato, basil"
		}`))
	})

	result, err := client.SearchRecipes(context.Background(), "tomato, basil")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "tomato, basil", result.IngredientsUsed)
	require.Len(t, result.Recipes, 1)
	assert.Equal(t, "Tomato Basil Pasta", result.Recipes[0].Name)
}

func TestClient_AddIngredient_ReturnsNormalizedName(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, " Fresh Basil ", body["ingredient"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Ingredient added successfully","ingredient":"fresh basil"}`))
	})

	added, err := client.AddIngredient(context.Background(), " Fresh Basil ")

	require.NoError(t, err)
	assert.Equal(t, "fresh basil", added)
}

func TestClient_RemoveIngredient_EscapesPath(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/ingredients/olive%20oil", r.URL.EscapedPath())

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Ingredient removed successfully"}`))
	})

	require.NoError(t, client.RemoveIngredient(context.Background(), "olive oil"))
}

func TestClient_AddFavorite(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		recipe, ok := body["recipe"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Caprese Salad", recipe["name"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Recipe added to favorites"}`))
	})

	err := client.AddFavorite(context.Background(), Recipe{Name: "Caprese Salad"})

	require.NoError(t, err)
}

func TestClient_History(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"history":[{"ingredients":"tomato","recipes_found":3,"search_time":"2025-06-01T12:00:00Z"}]}`))
	})

	history, err := client.History(context.Background())

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "tomato", history[0].Ingredients)
	assert.Equal(t, 3, history[0].RecipesFound)
}

func TestClient_Stats(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"stats":{
			"total_ingredients": 4,
			"total_favorites": 2,
			"total_searches": 9,
			"recent_ingredients": ["tomato","basil"],
			"last_search": {"ingredients":"tomato","recipes_found":3,"search_time":"2025-06-01T12:00:00Z"}
		}}`))
	})

	stats, err := client.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalIngredients)
	assert.Equal(t, 9, stats.TotalSearches)
	require.NotNil(t, stats.LastSearch)
	assert.Equal(t, "tomato", stats.LastSearch.Ingredients)
}

func TestClient_Logout_LocalOnly(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("logout must not hit the server")
	})
	require.NoError(t, store.SetToken("stored-token"))

	require.NoError(t, client.Logout())

	_, ok := store.Token()
	assert.False(t, ok)
}
