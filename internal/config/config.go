package config

import (
	"os"
	"strings"
	"time"
)

// Config holds the few knobs the checker exposes. Every field has a
// working default; nothing is read from files.
type Config struct {
	APIBase     string        // GitHub API base, e.g. https://api.github.com
	UserAgent   string        // identifying client header on fetch requests
	HTTPTimeout time.Duration // transport-level bound on the single fetch
}

// Defaults returns the stock GitHub-facing configuration.
func Defaults() Config {
	return Config{
		APIBase:     "https://api.github.com",
		UserAgent:   "relcheck",
		HTTPTimeout: 30 * time.Second,
	}
}

// Load returns defaults with the API base override from the
// environment. RELCHECK_API_BASE exists so checks can be pointed at a
// local stand-in server; unset, Load is identical to Defaults.
func Load() Config {
	cfg := Defaults()
	if v := strings.TrimSpace(os.Getenv("RELCHECK_API_BASE")); v != "" {
		cfg.APIBase = strings.TrimRight(v, "/")
	}
	return cfg
}
