// Package suggest provides the recipe suggestion service backed by an
// OpenAI-compatible chat-completions endpoint.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"forkcast/config"
	"forkcast/internal/domain/entity"
	"forkcast/internal/domain/service"
	"forkcast/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultModel       = "gpt-3.5-turbo"
	defaultMaxTokens   = 1500
	defaultTemperature = 0.7
	defaultTimeout     = 30 * time.Second
	suggestionCount    = 3
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// openAISuggester implements the RecipeSuggester interface against a
// chat-completions API. Any upstream or parse failure degrades to the
// deterministic fallback recipes so a search never fails outright.
type openAISuggester struct {
	client      *http.Client
	logger      *slog.Logger
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
}

// NewOpenAISuggester is the constructor for openAISuggester.
func NewOpenAISuggester(params Params) service.RecipeSuggester {
	cfg := params.Config.Suggester

	s := &openAISuggester{
		client:      &http.Client{Timeout: defaultTimeout},
		logger:      params.Logger,
		model:       defaultModel,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}

	if cfg != nil {
		s.baseURL = strings.TrimRight(cfg.BaseURL, "/")
		s.apiKey = cfg.APIKey
		if cfg.Model != "" {
			s.model = cfg.Model
		}
		if cfg.MaxTokens > 0 {
			s.maxTokens = cfg.MaxTokens
		}
		if cfg.Temperature > 0 {
			s.temperature = cfg.Temperature
		}
		if cfg.Timeout > 0 {
			s.client.Timeout = cfg.Timeout
		}
	}

	return s
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// suggestedRecipe is the JSON shape the model is prompted to produce.
type suggestedRecipe struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	CookTime     string   `json:"cook_time"`
	Difficulty   string   `json:"difficulty"`
}

// Suggest returns recipe suggestions for the given ingredients. When the
// upstream call is disabled, fails, or returns an unusable payload, the
// deterministic fallback recipes are returned instead.
func (s *openAISuggester) Suggest(ctx context.Context, ingredients string) ([]*entity.Recipe, error) {
	if s.apiKey == "" {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "suggester api key not configured, using fallback recipes")

		return fallbackRecipes(ingredients), nil
	}

	recipes, err := s.generate(ctx, ingredients)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "recipe generation failed, using fallback recipes",
			slog.String("error", err.Error()),
		)

		return fallbackRecipes(ingredients), nil
	}

	return recipes, nil
}

func (s *openAISuggester) generate(ctx context.Context, ingredients string) ([]*entity.Recipe, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful cooking assistant that suggests recipes based on available ingredients."},
			{Role: "user", Content: buildPrompt(ingredients)},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "marshal chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "create chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call completion endpoint")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read completion response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, errors.Wrap(err, "decode completion response")
	}
	if len(chatResp.Choices) == 0 {
		return nil, errors.New("completion response has no choices")
	}

	return parseRecipes(chatResp.Choices[0].Message.Content)
}

func buildPrompt(ingredients string) string {
	return fmt.Sprintf(`Given these ingredients: %s

Suggest %d recipes that can be made primarily with these ingredients.
Respond with ONLY a JSON array, no other text. Each recipe object must have:
- "name": recipe name
- "description": one sentence description
- "ingredients": array of ingredient strings
- "instructions": array of step strings
- "cook_time": estimated time like "30 minutes"
- "difficulty": "Easy", "Medium", or "Hard"`, ingredients, suggestionCount)
}

// parseRecipes decodes the model output, tolerating markdown code fences
// around the JSON array.
func parseRecipes(content string) ([]*entity.Recipe, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var suggested []suggestedRecipe
	if err := json.Unmarshal([]byte(content), &suggested); err != nil {
		return nil, errors.Wrap(err, "parse suggested recipes")
	}
	if len(suggested) == 0 {
		return nil, errors.New("no recipes in completion output")
	}

	recipes := make([]*entity.Recipe, 0, len(suggested))
	for _, sr := range suggested {
		if sr.Name == "" {
			continue
		}
		recipes = append(recipes, &entity.Recipe{
			Name:         sr.Name,
			Description:  sr.Description,
			Ingredients:  sr.Ingredients,
			Instructions: sr.Instructions,
			CookTime:     sr.CookTime,
			Difficulty:   sr.Difficulty,
		})
	}
	if len(recipes) == 0 {
		return nil, errors.New("no usable recipes in completion output")
	}

	return recipes, nil
}
