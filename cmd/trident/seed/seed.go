// Package seedcmder provides the seed command for loading sample records.
package seedcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tridentsearch/trident/pkg/config"
	"github.com/tridentsearch/trident/pkg/logger"
	"github.com/tridentsearch/trident/pkg/nlp/nlpsvc"
	"github.com/tridentsearch/trident/pkg/seed"
	storemongo "github.com/tridentsearch/trident/pkg/store/mongo"
)

const seedLongDesc string = `Clear the configured store and load the canonical sample records,
computing an embedding for each via the NLP service (best effort).

Examples:
  trident seed
  trident seed --store-uri mongodb://localhost:27017/trident`

const seedShortDesc string = "Seed sample records"

type seedCommander struct {
	storeURI  string
	nlpTarget string
	configDir string
	debug     bool
	logger    *zap.Logger
}

func NewSeedCmd() *cobra.Command {
	cmder := &seedCommander{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: seedShortDesc,
		Long:  seedLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}

			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cmder.storeURI, "store-uri", "", "MongoDB connection string")
	cmd.Flags().StringVarP(&cmder.nlpTarget, "nlp", "n", "", "Base URL of the NLP translation/embedding service")
	cmd.Flags().StringVarP(&cmder.configDir, "config", "c", "", "Directory containing config.toml")

	return cmd
}

func (c *seedCommander) run(ctx context.Context) error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	v, err := config.InitViper(c.configDir)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	if c.storeURI != "" {
		cfg.Store.URI = c.storeURI
	}
	if c.nlpTarget != "" {
		cfg.NLP.Target = c.nlpTarget
	}

	if cfg.API.Environment == "production" {
		return fmt.Errorf("seeding disabled in production")
	}

	driver, err := storemongo.NewDriver(ctx, storemongo.Config{URI: cfg.Store.URI}, c.logger)
	if err != nil {
		return fmt.Errorf("failed to create MongoDB driver: %w", err)
	}
	defer driver.Close(ctx)

	embedder := nlpsvc.NewClient(nlpsvc.Config{BaseURL: cfg.NLP.Target})

	count, err := seed.Seed(ctx, driver, embedder, c.logger)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d records into %s\n", count, cfg.Store.URI)
	return nil
}
