package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tridentsearch/trident/api/search"
	"github.com/tridentsearch/trident/pkg/nlp"
	"github.com/tridentsearch/trident/pkg/store"
)

// DialFunc opens a store driver for the given connection target. Injected so
// the /api/connect rebinding path can be tested without a live database.
type DialFunc func(ctx context.Context, uri string) (store.Driver, error)

// Server is the API server for the trident search engine.
type Server struct {
	config   Config
	handle   *store.Handle
	resolver *search.Resolver
	embedder nlp.Embedder
	dial     DialFunc
	logger   *zap.Logger
	app      *fiber.App
}

// NewServer creates a new API server. The store handle is injected to allow
// sharing with other components; the handle, not a bare driver, because the
// /api/connect endpoint rebinds it at runtime.
func NewServer(config Config, handle *store.Handle, resolver *search.Resolver, embedder nlp.Embedder, dial DialFunc, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:   config,
		handle:   handle,
		resolver: resolver,
		embedder: embedder,
		dial:     dial,
		logger:   logger,
		app:      app,
	}

	app.Get("/ping", s.handlePing)
	app.Get("/api/categories", s.handleCategories)
	app.Post("/api/search", s.handleSearch)
	app.Post("/api/connect", s.handleConnect)
	app.Post("/api/seed", s.handleSeed)

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}
