package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vforit/ticktrack/internal/interfaces/cli/admin"
	"github.com/vforit/ticktrack/internal/interfaces/cli/migrate"
	"github.com/vforit/ticktrack/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ticktrack",
		Short: "TickTrack - issue tracking API server",
		Long:  `TickTrack is an issue tracking REST API with JWT authentication, ticket workflows, attachments and activity logging.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
