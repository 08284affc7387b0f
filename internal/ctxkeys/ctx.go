package ctxkeys

import (
	"context"

	"github.com/templui/aura/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	SessionKey contextKey = "session"
	ConfigKey  contextKey = "config"
)

// Session returns the chat session ID set by the session middleware.
func Session(ctx context.Context) string {
	id, _ := ctx.Value(SessionKey).(string)
	return id
}

func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionKey, id)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}
