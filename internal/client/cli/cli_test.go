package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"forkcast/internal/client/api"
	"forkcast/internal/client/app"
	mockClient "forkcast/internal/mocks/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

type cliFixture struct {
	service *mockClient.MockService
	store   *memoryStore
	out     *bytes.Buffer
	run     func(script string) string
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()

	service := mockClient.NewMockService(t)
	store := &memoryStore{}
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &cliFixture{service: service, store: store, out: out}
	f.run = func(script string) string {
		var c *CLI
		application := app.New(service, store, logger, func(n app.Notice) { c.Notify(n) })
		c = New(application, strings.NewReader(script), out, logger)
		require.NoError(t, c.Run(context.Background()))

		return out.String()
	}

	return f
}

func (f *cliFixture) expectDashboardLoads(user *api.User) {
	f.service.EXPECT().Ingredients(mock.Anything).Return([]string{"basil"}, nil)
	f.service.EXPECT().Favorites(mock.Anything).Return(nil, nil)
	f.service.EXPECT().History(mock.Anything).Return(nil, nil)
	f.service.EXPECT().Profile(mock.Anything).Return(user, nil)
}

func TestCLI_HelpAndQuit(t *testing.T) {
	f := newCLIFixture(t)

	out := f.run("help\nquit\n")

	assert.Contains(t, out, "Sign in with 'login")
	assert.Contains(t, out, "search <ingredients...>")
	assert.Contains(t, out, "register <name> <email> <password> <confirm>")
}

func TestCLI_UnknownCommand(t *testing.T) {
	f := newCLIFixture(t)

	out := f.run("dance\nquit\n")

	assert.Contains(t, out, `Unknown command "dance"`)
}

func TestCLI_AuthedCommandRequiresLogin(t *testing.T) {
	f := newCLIFixture(t)

	out := f.run("pantry\nquit\n")

	assert.Contains(t, out, "Sign in first.")
}

func TestCLI_UsageOnMissingArgs(t *testing.T) {
	f := newCLIFixture(t)

	out := f.run("login onlyemail\nquit\n")

	assert.Contains(t, out, "usage: login <email> <password>")
}

func TestCLI_LoginRendersDashboard(t *testing.T) {
	f := newCLIFixture(t)

	user := api.User{Name: "Test User", Email: "test@example.com"}
	f.service.EXPECT().
		Login(mock.Anything, "test@example.com", "secret123").
		Return(&api.AuthResult{Message: "Login successful", Token: "fresh", User: user}, nil)
	f.expectDashboardLoads(&user)

	out := f.run("login test@example.com secret123\nquit\n")

	assert.Contains(t, out, "ok: Login successful")
	assert.Contains(t, out, "Welcome back, Test User!")
	assert.Contains(t, out, "[x] basil")
}

func TestCLI_BootstrapWithStoredToken(t *testing.T) {
	f := newCLIFixture(t)
	require.NoError(t, f.store.SetToken("stored-token"))

	user := api.User{Name: "Test User"}
	f.expectDashboardLoads(&user)

	out := f.run("quit\n")

	assert.Contains(t, out, "Welcome back, Test User!")
}

func TestCLI_SearchAndFavorite(t *testing.T) {
	f := newCLIFixture(t)
	require.NoError(t, f.store.SetToken("stored-token"))

	user := api.User{Name: "Test User"}
	f.expectDashboardLoads(&user)

	recipe := api.Recipe{Name: "Tomato Basil Pasta", Difficulty: "Easy"}
	f.service.EXPECT().
		SearchRecipes(mock.Anything, "tomato basil").
		Return(&api.SearchResult{Recipes: []api.Recipe{recipe}, Total: 1}, nil)
	f.service.EXPECT().AddFavorite(mock.Anything, recipe).Return(nil)

	out := f.run("search tomato basil\nfavorite 1\nquit\n")

	assert.Contains(t, out, "ok: Found 1 recipe!")
	assert.Contains(t, out, "[1] Tomato Basil Pasta (easy)")
	assert.Contains(t, out, "ok: Recipe added to favorites")
}

func TestCLI_FavoriteOutOfRange(t *testing.T) {
	f := newCLIFixture(t)
	require.NoError(t, f.store.SetToken("stored-token"))
	f.expectDashboardLoads(&api.User{Name: "Test User"})

	out := f.run("favorite 3\nquit\n")

	assert.Contains(t, out, "No recipe number 3 in the last search")
}

func TestCLI_Health(t *testing.T) {
	f := newCLIFixture(t)

	f.service.EXPECT().
		Health(mock.Anything).
		Return(&api.Health{Status: "healthy", Version: "1.0.0"}, nil)

	out := f.run("health\nquit\n")

	assert.Contains(t, out, "Server healthy (version 1.0.0)")
}

func TestCLI_LoginFailureSurfacesMessage(t *testing.T) {
	f := newCLIFixture(t)

	f.service.EXPECT().
		Login(mock.Anything, "test@example.com", "wrong").
		Return(nil, &api.RequestError{Status: 401, Message: "Invalid email or password"})

	out := f.run("login test@example.com wrong\nquit\n")

	assert.Contains(t, out, "error: Invalid email or password")
}
