package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/barisgit/vitekit/internal/config"
	"github.com/barisgit/vitekit/internal/frontend"
	"github.com/barisgit/vitekit/internal/pkgmanager"
	"github.com/barisgit/vitekit/internal/runner"
)

func DoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that node, git and a package manager are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context(), cmd.OutOrStdout(), runner.NewProcessRunner())
		},
	}

	return cmd
}

func runDoctor(ctx context.Context, out io.Writer, r runner.Runner) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := frontend.NewRegistryManager()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	checker := &pkgmanager.Checker{Runner: r, Catalog: catalog, GitBinary: settings.GitBinary}
	results := checker.CheckAll(ctx)

	fmt.Fprintln(out, "🩺 Checking tools...")
	missingRequired := false
	managers := 0
	for i, res := range results {
		if res.OK() {
			fmt.Fprintf(out, "  ✅ %s %s\n", res.Tool, res.Version)
			if i > 0 && i < len(results)-1 {
				managers++
			}
			continue
		}
		fmt.Fprintf(out, "  ❌ %v\n", res.Err)
		// node is first and git is last, package managers are in between
		if i == 0 || i == len(results)-1 {
			missingRequired = true
		}
	}

	if missingRequired || managers == 0 {
		return fmt.Errorf("required tools are missing or too old")
	}
	return nil
}
