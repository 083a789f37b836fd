package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	project "github.com/barisgit/vitekit/config"
	"github.com/barisgit/vitekit/internal/config"
	"github.com/barisgit/vitekit/internal/frontend"
	"github.com/barisgit/vitekit/internal/logging"
	"github.com/barisgit/vitekit/internal/prompt"
	"github.com/barisgit/vitekit/internal/runner"
	"github.com/barisgit/vitekit/internal/scaffold"
	"github.com/barisgit/vitekit/internal/templates"
)

// newDeps are the collaborators of a scaffolding run
type newDeps struct {
	runner runner.Runner
	asker  prompt.Asker
	dir    string // parent directory of the new project
}

// RunNew asks the questionnaire and scaffolds the project in the working directory
func RunNew(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	return runNew(cmd.Context(), cmd.OutOrStdout(), newDeps{
		runner: runner.NewProcessRunner(),
		asker:  prompt.NewSurveyAsker(),
		dir:    dir,
	})
}

func runNew(ctx context.Context, out io.Writer, deps newDeps) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	reporter := logging.New(out, settings.Debug)

	catalog, err := frontend.NewRegistryManager()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	tm, err := templates.NewManager()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	cfg, err := collect(catalog, deps.asker, settings, reporter)
	if err != nil {
		return err
	}
	reporter.Debugf("answers: %+v", *cfg)

	pipeline := scaffold.New(deps.runner, catalog, tm, reporter, scaffold.Options{
		Template:      settings.Template,
		GitBinary:     settings.GitBinary,
		CommitMessage: settings.CommitMessage,
		SkipPreflight: settings.SkipPreflight,
	})

	report, err := pipeline.Run(ctx, deps.dir, cfg)
	if err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			reporter.Println("")
			reporter.Error("%s exited with code %d, last output:", exitErr.Command, exitErr.Code)
			reporter.Println("%s", exitErr.Tail(20))
		}
		return err
	}

	printSummary(reporter, cfg, report)
	return nil
}

// collect reads answers from the answers file when one is configured and
// asks interactively otherwise
func collect(catalog *frontend.RegistryManager, asker prompt.Asker, settings *config.Settings, reporter *logging.Reporter) (*project.ProjectConfig, error) {
	if settings.AnswersFile != "" {
		reporter.Debugf("reading answers from %s", settings.AnswersFile)
		options := project.DefaultLoadOptions()
		options.Path = settings.AnswersFile
		return project.NewConfigManager(options).LoadConfig()
	}
	return prompt.Collect(catalog, asker)
}

func printSummary(reporter *logging.Reporter, cfg *project.ProjectConfig, report *scaffold.Report) {
	reporter.Println("")
	reporter.Success("Created %s successfully!", cfg.Name)
	if len(report.Warnings) > 0 {
		reporter.Println("")
		for _, w := range report.Warnings {
			reporter.Warn("%s", w)
		}
	}
	reporter.Println("")
	reporter.Println("Next steps:")
	reporter.Println("  cd %s", cfg.Name)
	reporter.Println("  %s run dev", cfg.PackageManager)
	reporter.Println("")
}
