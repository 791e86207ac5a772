// Package api provides the HTTP server exposing the tiered search engine.
package api

// EnvProduction is the environment name under which seeding is disabled.
const EnvProduction = "production"

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":5001")
	ListenAddr string

	// Environment is the deployment environment name. Seeding is rejected
	// when it equals EnvProduction.
	Environment string
}

// ErrorResponse is the JSON error envelope for every user-visible failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
