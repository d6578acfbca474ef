package main

import (
	"os"

	"github.com/spf13/cobra"

	"vox/internal/interfaces/cli/migrate"
	"vox/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vox",
		Short: "Vox - campus feedback triage platform",
		Long:  `Vox collects student feedback, triages it by keyword and similarity, and routes it through the campus role hierarchy.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
