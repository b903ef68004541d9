package impl

import (
	"io"
	"log/slog"

	"forkcast/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(minPasswordLength int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        10,
			MinPasswordLength: minPasswordLength,
		},
	}
}
