package config

import (
	"os"
	"strings"
)

// Config carries process configuration, loaded from environment variables.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// Target is the store connection target: a Badger directory path, or a
	// SQLite DSN prefixed with "sqlite:".
	Target string
	// BaseURL is the public base URL used for links in feed output.
	BaseURL string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	addr := envString("INKWELL_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}

	baseURL := strings.TrimRight(envString("INKWELL_BASE_URL", ""), "/")
	if baseURL == "" {
		baseURL = baseURLFromAddr(addr)
	}

	return &Config{
		Addr:    addr,
		Target:  envString("INKWELL_DB", "data/inkwell"),
		BaseURL: baseURL,
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func baseURLFromAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
