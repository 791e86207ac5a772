// Package config holds the trident configuration: defaults, an optional
// config.toml file, and TRIDENT_-prefixed environment variables, resolved
// through viper.
package config

// Config represents the full trident configuration. The TOML layout uses
// sections for logical grouping.
type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Store StoreConfig `mapstructure:"store"`
	NLP   NLPConfig   `mapstructure:"nlp"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `mapstructure:"listen"`

	// Environment is the deployment environment ("development",
	// "production"). Seeding is disabled in production.
	Environment string `mapstructure:"environment"`
}

// StoreConfig holds document-store settings.
type StoreConfig struct {
	// Provider selects the backend: "mongo" or "memory".
	Provider string `mapstructure:"provider"`

	// URI is the connection string for the mongo provider.
	URI string `mapstructure:"uri"`
}

// NLPConfig holds settings for the external NLP service.
type NLPConfig struct {
	// Target is the base URL of the translation/embedding service.
	Target string `mapstructure:"target"`
}
