package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/internal/acronyms"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Acronyms is the default table; tool input entries override it.
	Acronyms camel.Acronyms

	// MaxDepth bounds document nesting.
	MaxDepth int

	// MaxInlineSize bounds the size in bytes of a document.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from KEYCASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Acronyms:      envAcronyms("KEYCASE_ACRONYMS"),
		MaxDepth:      envInt("KEYCASE_MAX_DEPTH", camel.DefaultMaxDepth),
		MaxInlineSize: envInt64("KEYCASE_MAX_INLINE_SIZE", 10*1024*1024),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envAcronyms(key string) camel.Acronyms {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	table, err := acronyms.ParseList(v)
	if err != nil {
		slog.Warn("invalid acronyms env var, ignoring", "key", key, "value", v, "error", err) //nolint:gosec // G706: values are structured log fields, not format strings
		return nil
	}
	return table
}
