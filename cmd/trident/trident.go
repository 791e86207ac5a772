// Package tridentcmder provides the root trident command.
package tridentcmder

import (
	"github.com/spf13/cobra"

	seedcmder "github.com/tridentsearch/trident/cmd/trident/seed"
	servecmder "github.com/tridentsearch/trident/cmd/trident/serve"
)

const tridentLongDesc string = `Trident answers free-text queries against a heterogeneous record store
by cascading through three strategies: structured query translation,
semantic vector search, and fuzzy keyword matching.

Run services using:
  trident serve        Run the search API server
  trident seed         Seed the store with sample records`

const tridentShortDesc string = "Trident - Tiered Search Resolution"

func NewTridentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trident",
		Short: tridentShortDesc,
		Long:  tridentLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(seedcmder.NewSeedCmd())

	return cmd
}
