package suggest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"forkcast/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSuggester(t *testing.T, baseURL, apiKey string) *openAISuggester {
	t.Helper()

	cfg := &config.Config{
		Suggester: &config.SuggesterConfig{
			BaseURL: baseURL,
			APIKey:  apiKey,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, ok := NewOpenAISuggester(Params{Config: cfg, Logger: logger}).(*openAISuggester)
	require.True(t, ok)

	return s
}

func completionBody(t *testing.T, content string) []byte {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)

	return body
}

func TestSuggest_ParsesUpstreamRecipes(t *testing.T) {
	content := "```json\n" + `[
		{"name":"Tomato Pasta","description":"Pasta with tomato.","ingredients":["tomato","pasta"],"instructions":["Boil pasta","Add sauce"],"cook_time":"25 minutes","difficulty":"Easy"},
		{"name":"Tomato Soup","description":"Warm soup.","ingredients":["tomato"],"instructions":["Simmer"],"cook_time":"30 minutes","difficulty":"Medium"}
	]` + "\n```"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(completionBody(t, content))
	}))
	defer server.Close()

	s := newTestSuggester(t, server.URL, "test-key")

	recipes, err := s.Suggest(context.Background(), "tomato, pasta")
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Tomato Pasta", recipes[0].Name)
	assert.Equal(t, []string{"Boil pasta", "Add sauce"}, recipes[0].Instructions)
	assert.Equal(t, "Medium", recipes[1].Difficulty)
}

func TestSuggest_FallsBackWithoutAPIKey(t *testing.T) {
	s := newTestSuggester(t, "http://unused", "")

	recipes, err := s.Suggest(context.Background(), "chicken, rice")
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Simple Chicken Dish", recipes[0].Name)
	assert.Equal(t, "Healthy Chicken Bowl", recipes[1].Name)
	assert.Equal(t, "Classic Chicken Recipe", recipes[2].Name)
}

func TestSuggest_FallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := newTestSuggester(t, server.URL, "test-key")

	recipes, err := s.Suggest(context.Background(), "beef")
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Simple Beef Dish", recipes[0].Name)
}

func TestSuggest_FallsBackOnMalformedContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(completionBody(t, "Sorry, I can't help with that."))
	}))
	defer server.Close()

	s := newTestSuggester(t, server.URL, "test-key")

	recipes, err := s.Suggest(context.Background(), "salmon")
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Simple Salmon Dish", recipes[0].Name)
}

func TestFallbackRecipes_EmptyIngredients(t *testing.T) {
	recipes := fallbackRecipes("   ")
	require.Len(t, recipes, 3)
	assert.Equal(t, "Simple Mixed Vegetables Dish", recipes[0].Name)
}

func TestParseRecipes_PlainJSON(t *testing.T) {
	recipes, err := parseRecipes(`[{"name":"Plain","description":"d","cook_time":"5 minutes","difficulty":"Easy"}]`)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Plain", recipes[0].Name)
}

func TestParseRecipes_SkipsNamelessEntries(t *testing.T) {
	_, err := parseRecipes(`[{"description":"nameless"}]`)
	assert.Error(t, err)
}
