// Package cli implements the vendio command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vendio",
		Short: "Retail sales API",
		Long: `vendio serves a JSON API for a retail sales system: product catalog,
sales records with soft-delete cancellation, and client lookups.

Configuration comes from environment variables (PG_DSN, APP_ADDR,
CURRENCY_LOCALE, ...).`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
