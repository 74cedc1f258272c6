package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"stratplan/internal/interfaces/cli/admin"
	"stratplan/internal/interfaces/cli/migrate"
	"stratplan/internal/interfaces/cli/seed"
	"stratplan/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "stratplan",
		Short:         "Stratplan - strategic planning service",
		Long:          `Stratplan serves the strategic planning API and ships the migration, seeding and provisioning tools.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)
	rootCmd.AddCommand(admin.NewCommands()...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
