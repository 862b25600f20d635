package main

import (
	"os"

	"github.com/spf13/cobra"

	"quartermaster/internal/interfaces/cli/migrate"
	"quartermaster/internal/interfaces/cli/server"
	"quartermaster/internal/interfaces/cli/sync"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quartermaster",
		Short: "Quartermaster - hardware asset inventory cache",
		Long:  `Quartermaster caches hardware asset inventory from the upstream provider, classifies devices into performance tiers, and serves search queries over the result.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sync.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
