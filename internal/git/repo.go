// Package git initialises the repository of a generated project.
package git

import (
	"context"
	"fmt"

	"github.com/barisgit/vitekit/internal/runner"
)

// Repo runs git commands inside one project root
type Repo struct {
	Root   string
	Binary string // defaults to "git"
	runner runner.Runner
}

// NewRepo creates a repository handle for root
func NewRepo(r runner.Runner, binary, root string) *Repo {
	if binary == "" {
		binary = "git"
	}
	return &Repo{Root: root, Binary: binary, runner: r}
}

// Init runs `git init`
func (g *Repo) Init(ctx context.Context) error {
	if err := g.run(ctx, "init"); err != nil {
		return fmt.Errorf("failed to initialize git repository: %w", err)
	}
	return nil
}

// AddAll stages every file of the project
func (g *Repo) AddAll(ctx context.Context) error {
	if err := g.run(ctx, "add", "."); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// Commit records the staged files
func (g *Repo) Commit(ctx context.Context, message string) error {
	if err := g.run(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to create commit: %w", err)
	}
	return nil
}

func (g *Repo) run(ctx context.Context, args ...string) error {
	_, err := g.runner.Run(ctx, runner.Command{Name: g.Binary, Args: args, Dir: g.Root})
	return err
}
