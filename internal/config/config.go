package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds the runtime knobs of the CLI. The command line itself takes
// no flags, so everything tunable comes from the environment or a .env file.
type Settings struct {
	// Debug enables verbose step logging.
	Debug bool `env:"VITEKIT_DEBUG"`
	// AnswersFile, when set, replaces the interactive questionnaire.
	AnswersFile string `env:"VITEKIT_ANSWERS"`
	// Template is the create-vite template identifier.
	Template string `env:"VITEKIT_TEMPLATE" envDefault:"vue-ts"`
	// GitBinary is the version-control executable.
	GitBinary string `env:"VITEKIT_GIT" envDefault:"git"`
	// CommitMessage is used for the single commit made by the finalizer.
	CommitMessage string `env:"VITEKIT_COMMIT_MESSAGE" envDefault:"Initial commit"`
	// SkipPreflight disables the tool version checks before scaffolding.
	SkipPreflight bool `env:"VITEKIT_SKIP_PREFLIGHT"`
}

// Load reads an optional .env file from the working directory and then parses
// the process environment. Variables already set win over the .env file.
func Load() (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	settings := &Settings{}
	if err := env.Parse(settings); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if settings.Template == "" {
		return nil, fmt.Errorf("VITEKIT_TEMPLATE cannot be empty")
	}
	return settings, nil
}
