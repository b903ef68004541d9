// Package app holds the client's state machine and action flows. Flows talk
// to the server through the Service interface, mutate the in-memory snapshot,
// and report progress through notices; rendering is left to the caller.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"forkcast/internal/client/api"
	"forkcast/internal/client/session"
)

// State is the client's authentication lifecycle position.
type State int

const (
	StateUnauthenticated State = iota
	StateChecking
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// NoticeLevel classifies a notice for presentation.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// Notice is a user-facing progress or result message.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Notifier receives notices as flows progress. A nil Notifier is allowed.
type Notifier func(Notice)

// Service is the API surface the flows depend on.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*api.AuthResult, error)
	Login(ctx context.Context, email, password string) (*api.AuthResult, error)
	Logout() error
	SearchRecipes(ctx context.Context, ingredients string) (*api.SearchResult, error)
	Ingredients(ctx context.Context) ([]string, error)
	AddIngredient(ctx context.Context, name string) (string, error)
	RemoveIngredient(ctx context.Context, name string) error
	Favorites(ctx context.Context) ([]api.RecipeSummary, error)
	AddFavorite(ctx context.Context, recipe api.Recipe) error
	History(ctx context.Context) ([]api.HistoryEntry, error)
	Profile(ctx context.Context) (*api.User, error)
	Stats(ctx context.Context) (*api.Stats, error)
	Health(ctx context.Context) (*api.Health, error)
}

// ValidationError is a client-side rejection raised before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// App is the client's mutable state plus the flows that drive it.
type App struct {
	service Service
	session session.TokenStore
	logger  *slog.Logger
	notify  Notifier

	mu          sync.RWMutex
	state       State
	user        *api.User
	ingredients []string
	favorites   []api.RecipeSummary
	history     []api.HistoryEntry
	recipes     []api.Recipe
	stats       *api.Stats
	searchInput string
}

func New(service Service, store session.TokenStore, logger *slog.Logger, notify Notifier) *App {
	if notify == nil {
		notify = func(Notice) {}
	}

	return &App{
		service: service,
		session: store,
		logger:  logger,
		notify:  notify,
		state:   StateUnauthenticated,
	}
}

// Bootstrap restores the session at startup. Without a token the app lands on
// the login view. With one, the token is validated against the profile
// endpoint; a rejection clears it, a success loads the dashboard.
func (a *App) Bootstrap(ctx context.Context) {
	if _, ok := a.session.Token(); !ok {
		a.setState(StateUnauthenticated)

		return
	}

	a.setState(StateChecking)

	user, err := a.service.Profile(ctx)
	if err != nil {
		a.logger.Warn("stored session rejected", slog.Any("error", err))
		if clearErr := a.session.Clear(); clearErr != nil {
			a.logger.Warn("failed to clear stale token", slog.Any("error", clearErr))
		}
		a.setState(StateUnauthenticated)
		a.notify(Notice{Level: NoticeWarning, Message: "Session expired, please sign in again"})

		return
	}

	a.mu.Lock()
	a.user = user
	a.state = StateAuthenticated
	a.mu.Unlock()

	a.loadDashboard(ctx)
}

// Login authenticates and loads the dashboard.
func (a *App) Login(ctx context.Context, email, password string) error {
	a.notify(Notice{Level: NoticeInfo, Message: "Signing in..."})

	result, err := a.service.Login(ctx, email, password)
	if err != nil {
		a.notify(Notice{Level: NoticeError, Message: flowMessage(err)})

		return err
	}

	a.mu.Lock()
	a.user = &result.User
	a.state = StateAuthenticated
	a.mu.Unlock()

	a.notify(Notice{Level: NoticeSuccess, Message: result.Message})
	a.loadDashboard(ctx)

	return nil
}

// Register creates an account and loads the dashboard. A confirm-password
// mismatch is rejected locally without touching the network.
func (a *App) Register(ctx context.Context, name, email, password, confirm string) error {
	if password != confirm {
		err := &ValidationError{Message: "Passwords do not match"}
		a.notify(Notice{Level: NoticeWarning, Message: err.Message})

		return err
	}

	a.notify(Notice{Level: NoticeInfo, Message: "Creating your account..."})

	result, err := a.service.Register(ctx, name, email, password)
	if err != nil {
		a.notify(Notice{Level: NoticeError, Message: flowMessage(err)})

		return err
	}

	a.mu.Lock()
	a.user = &result.User
	a.state = StateAuthenticated
	a.mu.Unlock()

	a.notify(Notice{Level: NoticeSuccess, Message: result.Message})
	a.loadDashboard(ctx)

	return nil
}

// Logout clears the token and all loaded state. No network call is made.
func (a *App) Logout() error {
	if err := a.service.Logout(); err != nil {
		a.notify(Notice{Level: NoticeError, Message: flowMessage(err)})

		return err
	}

	a.mu.Lock()
	a.state = StateUnauthenticated
	a.user = nil
	a.ingredients = nil
	a.favorites = nil
	a.history = nil
	a.recipes = nil
	a.stats = nil
	a.searchInput = ""
	a.mu.Unlock()

	a.notify(Notice{Level: NoticeSuccess, Message: "Signed out"})

	return nil
}

// SetSearchInput records the pending search text.
func (a *App) SetSearchInput(input string) {
	a.mu.Lock()
	a.searchInput = input
	a.mu.Unlock()
}

// Search runs the pending search. On success the input is cleared, the result
// snapshot replaced, and the history reloaded to include the new record.
func (a *App) Search(ctx context.Context) error {
	a.mu.RLock()
	input := a.searchInput
	a.mu.RUnlock()

	if strings.TrimSpace(input) == "" {
		err := &ValidationError{Message: "Please enter some ingredients"}
		a.notify(Notice{Level: NoticeWarning, Message: err.Message})

		return err
	}

	a.notify(Notice{Level: NoticeInfo, Message: "Searching for recipes..."})

	result, err := a.service.SearchRecipes(ctx, input)
	if err != nil {
		a.notify(Notice{Level: NoticeError, Message: flowMessage(err)})

		return err
	}

	a.mu.Lock()
	a.recipes = result.Recipes
	a.searchInput = ""
	a.mu.Unlock()

	noun := "recipes"
	if result.Total == 1 {
		noun = "recipe"
	}
	a.notify(Notice{Level: NoticeSuccess, Message: fmt.Sprintf("Found %d %s!", result.Total, noun)})

	a.reloadHistory(ctx)

	return nil
}

// AddIngredient adds one pantry item, appending the server's normalized form
// to the local list without a full reload.
func (a *App) AddIngredient(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		err := &ValidationError{Message: "Ingredient name is required"}
		a.notify(Notice{Level: NoticeWarning, Message: err.Message})

		return err
	}

	a.notify(Notice{Level: NoticeInfo, Message: "Adding ingredient..."})

	added, err := a.service.AddIngredient(ctx, name)
	if err != nil {
		a.notify(Notice{Level: NoticeError, Message: flowMessage(err)})

		return err
	}

	a.mu.Lock()
	a.ingredients = append(a.ingredients, added)
	a.mu.Unlock()

	a.notify(Notice{Level: NoticeSuccess, Message: "Added " + added})

	return nil
}

// RemoveIngredient removes one pantry item and drops it from the local list.
func (a *App) RemoveIngredient(ctx context.Context, name string) error {
	a.notify(Notice{Level: NoticeInfo, Message: "Removing ingredient..."})

	if err := a.service.RemoveIngredient(ctx, name); err != nil {
		a.notify(Notice{Level: NoticeError, Message: flowMessage(err)})

		return err
	}

	a.mu.Lock()
	kept := a.ingredients[:0]
	for _, ingredient := range a.ingredients {
		if ingredient != name {
			kept = append(kept, ingredient)
		}
	}
	a.ingredients = kept
	a.mu.Unlock()

	a.notify(Notice{Level: NoticeSuccess, Message: "Removed " + name})

	return nil
}

// AddFavorite saves a recipe and reloads the favorites list.
func (a *App) AddFavorite(ctx context.Context, recipe api.Recipe) error {
	if strings.TrimSpace(recipe.Name) == "" {
		err := &ValidationError{Message: "Recipe name is required"}
		a.notify(Notice{Level: NoticeWarning, Message: err.Message})

		return err
	}

	a.notify(Notice{Level: NoticeInfo, Message: "Saving recipe..."})

	if err := a.service.AddFavorite(ctx, recipe); err != nil {
		a.notify(Notice{Level: NoticeError, Message: flowMessage(err)})

		return err
	}

	a.notify(Notice{Level: NoticeSuccess, Message: "Recipe added to favorites"})

	favorites, err := a.service.Favorites(ctx)
	if err != nil {
		a.logger.Warn("failed to reload favorites", slog.Any("error", err))

		return nil
	}

	a.mu.Lock()
	a.favorites = favorites
	a.mu.Unlock()

	return nil
}

// Health pings the server without authentication.
func (a *App) Health(ctx context.Context) (*api.Health, error) {
	health, err := a.service.Health(ctx)
	if err != nil {
		a.notify(Notice{Level: NoticeError, Message: flowMessage(err)})

		return nil, err
	}

	return health, nil
}

// RefreshStats refetches the activity summary.
func (a *App) RefreshStats(ctx context.Context) error {
	stats, err := a.service.Stats(ctx)
	if err != nil {
		a.notify(Notice{Level: NoticeError, Message: flowMessage(err)})

		return err
	}

	a.mu.Lock()
	a.stats = stats
	a.mu.Unlock()

	return nil
}

// loadDashboard fetches the four dashboard datasets concurrently. Each load
// records its own failure; one failing does not stop the others.
func (a *App) loadDashboard(ctx context.Context) {
	loads := []struct {
		name string
		run  func(context.Context) error
	}{
		{"ingredients", func(ctx context.Context) error {
			ingredients, err := a.service.Ingredients(ctx)
			if err != nil {
				return err
			}
			a.mu.Lock()
			a.ingredients = ingredients
			a.mu.Unlock()

			return nil
		}},
		{"favorites", func(ctx context.Context) error {
			favorites, err := a.service.Favorites(ctx)
			if err != nil {
				return err
			}
			a.mu.Lock()
			a.favorites = favorites
			a.mu.Unlock()

			return nil
		}},
		{"history", func(ctx context.Context) error {
			history, err := a.service.History(ctx)
			if err != nil {
				return err
			}
			a.mu.Lock()
			a.history = history
			a.mu.Unlock()

			return nil
		}},
		{"profile", func(ctx context.Context) error {
			user, err := a.service.Profile(ctx)
			if err != nil {
				return err
			}
			a.mu.Lock()
			a.user = user
			a.mu.Unlock()

			return nil
		}},
	}

	var wg sync.WaitGroup
	for _, load := range loads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := load.run(ctx); err != nil {
				a.logger.Warn("dashboard load failed",
					slog.String("load", load.name),
					slog.Any("error", err))
			}
		}()
	}
	wg.Wait()
}

func (a *App) reloadHistory(ctx context.Context) {
	history, err := a.service.History(ctx)
	if err != nil {
		a.logger.Warn("failed to reload history", slog.Any("error", err))

		return
	}

	a.mu.Lock()
	a.history = history
	a.mu.Unlock()
}

func (a *App) setState(state State) {
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()
}

// State reports the current lifecycle position.
func (a *App) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.state
}

// User returns the signed-in user, or nil.
func (a *App) User() *api.User {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.user
}

// Ingredients returns the pantry snapshot.
func (a *App) Ingredients() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.ingredients
}

// Favorites returns the saved-recipe snapshot.
func (a *App) Favorites() []api.RecipeSummary {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.favorites
}

// History returns the search-history snapshot.
func (a *App) History() []api.HistoryEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.history
}

// Recipes returns the last search results.
func (a *App) Recipes() []api.Recipe {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.recipes
}

// Stats returns the activity summary, or nil before the first refresh.
func (a *App) Stats() *api.Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.stats
}

// SearchInput returns the pending search text.
func (a *App) SearchInput() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.searchInput
}

// flowMessage extracts a user-facing message from a flow error. Server
// rejections carry their own wording; transport failures get a generic line.
func flowMessage(err error) string {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}

	return "Something went wrong. Please try again."
}
