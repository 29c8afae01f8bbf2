package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/catenary/urltools/urlbuilder"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Builder defaults applied to every tool call.
	BufferCapacity int
	TimeLayout     string

	// MaxParamsSize caps the serialized size of an inline params document.
	MaxParamsSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from URLTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		BufferCapacity: envInt("URLTOOLS_BUFFER_CAPACITY", urlbuilder.DefaultBufferCapacity),
		TimeLayout:     os.Getenv("URLTOOLS_TIME_LAYOUT"),
		MaxParamsSize:  envInt64("URLTOOLS_MAX_PARAMS_SIZE", 1024*1024),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
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
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

