// Package cli is the interactive shell wrapping the client flows.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"forkcast/internal/client/app"
	"forkcast/internal/client/view"
)

// CLI reads commands from in, drives the app, and renders to out.
type CLI struct {
	app    *app.App
	in     io.Reader
	out    io.Writer
	logger *slog.Logger

	commands []command
}

type command struct {
	name    string
	usage   string
	summary string
	minArgs int
	authed  bool
	run     func(ctx context.Context, args []string) error
}

func New(application *app.App, in io.Reader, out io.Writer, logger *slog.Logger) *CLI {
	c := &CLI{
		app:    application,
		in:     in,
		out:    out,
		logger: logger,
	}

	c.commands = []command{
		{
			name: "help", usage: "help", summary: "Show this help",
			run: func(_ context.Context, _ []string) error {
				c.printHelp()

				return nil
			},
		},
		{
			name: "register", usage: "register <name> <email> <password> <confirm>",
			summary: "Create an account", minArgs: 4,
			run: func(ctx context.Context, args []string) error {
				if err := c.app.Register(ctx, args[0], args[1], args[2], args[3]); err != nil {
					return nil
				}
				c.renderDashboard()

				return nil
			},
		},
		{
			name: "login", usage: "login <email> <password>",
			summary: "Sign in", minArgs: 2,
			run: func(ctx context.Context, args []string) error {
				if err := c.app.Login(ctx, args[0], args[1]); err != nil {
					return nil
				}
				c.renderDashboard()

				return nil
			},
		},
		{
			name: "logout", usage: "logout", summary: "Sign out", authed: true,
			run: func(_ context.Context, _ []string) error {
				_ = c.app.Logout()

				return nil
			},
		},
		{
			name: "search", usage: "search <ingredients...>",
			summary: "Find recipes for the given ingredients", minArgs: 1, authed: true,
			run: func(ctx context.Context, args []string) error {
				c.app.SetSearchInput(strings.Join(args, " "))
				if err := c.app.Search(ctx); err != nil {
					return nil
				}
				fmt.Fprint(c.out, view.RenderRecipes(c.app.Recipes()))

				return nil
			},
		},
		{
			name: "pantry", usage: "pantry", summary: "List your ingredients", authed: true,
			run: func(_ context.Context, _ []string) error {
				fmt.Fprint(c.out, view.RenderIngredients(c.app.Ingredients()))

				return nil
			},
		},
		{
			name: "add", usage: "add <ingredient...>",
			summary: "Add an ingredient to your pantry", minArgs: 1, authed: true,
			run: func(ctx context.Context, args []string) error {
				_ = c.app.AddIngredient(ctx, strings.Join(args, " "))

				return nil
			},
		},
		{
			name: "remove", usage: "remove <ingredient...>",
			summary: "Remove an ingredient from your pantry", minArgs: 1, authed: true,
			run: func(ctx context.Context, args []string) error {
				_ = c.app.RemoveIngredient(ctx, strings.Join(args, " "))

				return nil
			},
		},
		{
			name: "favorites", usage: "favorites", summary: "List saved recipes", authed: true,
			run: func(_ context.Context, _ []string) error {
				fmt.Fprint(c.out, view.RenderFavorites(c.app.Favorites()))

				return nil
			},
		},
		{
			name: "favorite", usage: "favorite <n>",
			summary: "Save the n-th recipe from the last search", minArgs: 1, authed: true,
			run: func(ctx context.Context, args []string) error {
				n, err := strconv.Atoi(args[0])
				recipes := c.app.Recipes()
				if err != nil || n < 1 || n > len(recipes) {
					fmt.Fprintf(c.out, "No recipe number %s in the last search\n", args[0])

					return nil
				}
				_ = c.app.AddFavorite(ctx, recipes[n-1])

				return nil
			},
		},
		{
			name: "history", usage: "history", summary: "Show recent searches", authed: true,
			run: func(_ context.Context, _ []string) error {
				fmt.Fprint(c.out, view.RenderHistory(c.app.History(), time.Now()))

				return nil
			},
		},
		{
			name: "profile", usage: "profile", summary: "Show your account", authed: true,
			run: func(_ context.Context, _ []string) error {
				fmt.Fprint(c.out, view.RenderProfile(c.app.User()))

				return nil
			},
		},
		{
			name: "stats", usage: "stats", summary: "Show your activity summary", authed: true,
			run: func(ctx context.Context, _ []string) error {
				if err := c.app.RefreshStats(ctx); err != nil {
					return nil
				}
				fmt.Fprint(c.out, view.RenderStats(c.app.Stats(), time.Now()))

				return nil
			},
		},
		{
			name: "health", usage: "health", summary: "Check the server",
			run: func(ctx context.Context, _ []string) error {
				health, err := c.app.Health(ctx)
				if err != nil {
					return nil
				}
				fmt.Fprintf(c.out, "Server %s (version %s)\n", health.Status, health.Version)

				return nil
			},
		},
	}

	return c
}

// Notify renders a notice. Wire it as the app's Notifier.
func (c *CLI) Notify(n app.Notice) {
	switch n.Level {
	case app.NoticeSuccess:
		fmt.Fprintf(c.out, "ok: %s\n", n.Message)
	case app.NoticeWarning:
		fmt.Fprintf(c.out, "warning: %s\n", n.Message)
	case app.NoticeError:
		fmt.Fprintf(c.out, "error: %s\n", n.Message)
	default:
		fmt.Fprintln(c.out, n.Message)
	}
}

// Run bootstraps the session and serves commands until quit or EOF.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Forkcast - find recipes with what you have")

	c.app.Bootstrap(ctx)
	if c.app.State() == app.StateAuthenticated {
		c.renderDashboard()
	} else {
		fmt.Fprintln(c.out, "Sign in with 'login <email> <password>' or create an account with 'register'.")
	}

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		name := strings.ToLower(fields[0])
		if name == "quit" || name == "exit" {
			break
		}

		if err := c.dispatch(ctx, name, fields[1:]); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func (c *CLI) dispatch(ctx context.Context, name string, args []string) error {
	for _, cmd := range c.commands {
		if cmd.name != name {
			continue
		}
		if len(args) < cmd.minArgs {
			fmt.Fprintf(c.out, "usage: %s\n", cmd.usage)

			return nil
		}
		if cmd.authed && c.app.State() != app.StateAuthenticated {
			fmt.Fprintln(c.out, "Sign in first.")

			return nil
		}

		return cmd.run(ctx, args)
	}

	fmt.Fprintf(c.out, "Unknown command %q. Try 'help'.\n", name)

	return nil
}

func (c *CLI) printHelp() {
	fmt.Fprintln(c.out, "Commands:")
	for _, cmd := range c.commands {
		fmt.Fprintf(c.out, "  %-45s %s\n", cmd.usage, cmd.summary)
	}
	fmt.Fprintln(c.out, "  quit                                          Leave")
}

func (c *CLI) renderDashboard() {
	if user := c.app.User(); user != nil {
		fmt.Fprintf(c.out, "Welcome back, %s!\n", user.Name)
	}
	fmt.Fprint(c.out, view.RenderIngredients(c.app.Ingredients()))
	fmt.Fprint(c.out, view.RenderFavorites(c.app.Favorites()))
	fmt.Fprint(c.out, view.RenderHistory(c.app.History(), time.Now()))
}
