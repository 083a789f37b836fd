package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/barisgit/vitekit/cmd"
	"github.com/barisgit/vitekit/internal/logging"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:           "vitekit",
		Short:         "vitekit - Vue 3 + TypeScript project scaffolding",
		Long:          `vitekit asks a few questions and generates a Vue 3 + TypeScript project with create-vite, then adds routing, state management, styling, linting and component auto-import.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cmd.RunNew,
	}

	// Add commands
	rootCmd.AddCommand(cmd.ListCmd())
	rootCmd.AddCommand(cmd.DoctorCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.New(os.Stderr, false).Error("Error: %v", err)
		stop()
		os.Exit(1)
	}
}
