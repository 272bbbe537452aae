package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// details on available environment variables:
//   - api.go: backend API configuration
//   - store.go: local state store configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, relaxed TLS
	// expectations against local backends). Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// API is the backend API configuration.
	API APIConfig `envPrefix:"API_"`

	// Store is the local state store configuration.
	Store StoreConfig `envPrefix:"STORE_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Store.Sanitize()
}
