// Package servecmder provides the serve command running the search API server.
package servecmder

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tridentsearch/trident/api"
	"github.com/tridentsearch/trident/api/search"
	"github.com/tridentsearch/trident/pkg/config"
	"github.com/tridentsearch/trident/pkg/logger"
	"github.com/tridentsearch/trident/pkg/nlp/nlpsvc"
	"github.com/tridentsearch/trident/pkg/store"
	"github.com/tridentsearch/trident/pkg/store/inmemory"
	storemongo "github.com/tridentsearch/trident/pkg/store/mongo"
)

type serveCommander struct {
	listen      string
	environment string
	provider    string
	storeURI    string
	nlpTarget   string
	configDir   string
	debug       bool
	logger      *zap.Logger
}

const serveLongDesc string = `Run the Trident search API server.

The server resolves free-text queries through the three-tier cascade
(structured translation, vector search, fuzzy matching) against the
configured document store.`

const serveShortDesc string = "Run the search API server"

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}

			cfg, err := cmder.resolveConfig(cmd)
			if err != nil {
				return err
			}

			return cmder.run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", "", "Address for API server to listen on")
	cmd.Flags().StringVarP(&cmder.environment, "environment", "e", "", "Deployment environment (seeding is disabled in production)")
	cmd.Flags().StringVar(&cmder.provider, "store", "", "Store provider (mongo, memory)")
	cmd.Flags().StringVar(&cmder.storeURI, "store-uri", "", "MongoDB connection string")
	cmd.Flags().StringVarP(&cmder.nlpTarget, "nlp", "n", "", "Base URL of the NLP translation/embedding service")
	cmd.Flags().StringVarP(&cmder.configDir, "config", "c", "", "Directory containing config.toml")

	return cmd
}

// resolveConfig merges flags, environment, config file, and defaults through
// viper (flag > env > file > default).
func (c *serveCommander) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.InitViper(c.configDir)
	if err != nil {
		return nil, err
	}

	bindings := map[string]string{
		"api.listen":      "listen",
		"api.environment": "environment",
		"store.provider":  "store",
		"store.uri":       "store-uri",
		"nlp.target":      "nlp",
	}
	for key, flag := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", flag, err)
			}
		}
	}

	return config.Load(v)
}

func (c *serveCommander) run(ctx context.Context, cfg *config.Config) error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	driver, err := c.newStoreDriver(ctx, cfg)
	if err != nil {
		return err
	}

	handle := store.NewHandle(driver)
	defer handle.Close(context.Background())

	nlpClient := nlpsvc.NewClient(nlpsvc.Config{BaseURL: cfg.NLP.Target})
	resolver := search.NewResolver(nlpClient, nlpClient, search.NewSuggester(), c.logger)

	dial := func(ctx context.Context, uri string) (store.Driver, error) {
		return storemongo.NewDriver(ctx, storemongo.Config{URI: uri}, c.logger)
	}

	server := api.NewServer(
		api.Config{
			ListenAddr:  cfg.API.Listen,
			Environment: cfg.API.Environment,
		},
		handle,
		resolver,
		nlpClient,
		dial,
		c.logger,
	)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		return server.Shutdown()
	}
}

func (c *serveCommander) newStoreDriver(ctx context.Context, cfg *config.Config) (store.Driver, error) {
	switch cfg.Store.Provider {
	case "memory":
		c.logger.Info("using in-memory store")
		return inmemory.NewDriver(), nil
	case "mongo", "":
		driver, err := storemongo.NewDriver(ctx, storemongo.Config{URI: cfg.Store.URI}, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create MongoDB driver: %w", err)
		}
		return driver, nil
	default:
		return nil, fmt.Errorf("unknown store provider %q", cfg.Store.Provider)
	}
}
