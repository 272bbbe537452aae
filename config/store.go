package config

import (
	"os"
	"path/filepath"
	"strings"
)

// StoreConfig contains local state store configuration.
type StoreConfig struct {
	// Path is the sqlite file holding credential and draft state for this
	// device. Empty selects a file under the user config directory.
	Path string `env:"PATH"`
}

// Sanitize applies guardrails to store configuration values.
func (c *StoreConfig) Sanitize() {
	c.Path = strings.TrimSpace(c.Path)
	if c.Path == "" {
		c.Path = defaultStorePath()
	}
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "relay-state.db"
	}
	return filepath.Join(dir, "relay", "state.db")
}
