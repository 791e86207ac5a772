package config

const (
	defaultAPIListen   = ":5001"
	defaultEnvironment = "development"

	defaultStoreProvider = "mongo"
	defaultStoreURI      = "mongodb://localhost:27017/trident"

	defaultNLPTarget = "http://localhost:8000"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Listen:      defaultAPIListen,
			Environment: defaultEnvironment,
		},
		Store: StoreConfig{
			Provider: defaultStoreProvider,
			URI:      defaultStoreURI,
		},
		NLP: NLPConfig{
			Target: defaultNLPTarget,
		},
	}
}
