// Package pkgmanager drives npm, yarn and pnpm through a runner.
package pkgmanager

import (
	"context"
	"fmt"

	"github.com/barisgit/vitekit/config"
	"github.com/barisgit/vitekit/internal/frontend"
	"github.com/barisgit/vitekit/internal/runner"
)

// Manager runs commands of one package manager
type Manager struct {
	name      config.PackageManager
	info      frontend.PackageManagerInfo
	generator string
	runner    runner.Runner
}

// New creates a manager for the named package manager
func New(r runner.Runner, catalog *frontend.RegistryManager, name config.PackageManager) (*Manager, error) {
	info, ok := catalog.GetPackageManager(name)
	if !ok {
		return nil, fmt.Errorf("unsupported package manager: %s", name)
	}
	return &Manager{
		name:      name,
		info:      *info,
		generator: catalog.GeneratorPackage(),
		runner:    r,
	}, nil
}

// Name returns the package manager binary name
func (m *Manager) Name() string {
	return string(m.name)
}

// CreateCommand builds the generator invocation run in the parent directory
func (m *Manager) CreateCommand(parent, project, template string) runner.Command {
	args := frontend.ExpandArgs(m.info.Create, map[string]string{
		"generator": m.generator,
		"name":      project,
		"template":  template,
	})
	return runner.Command{Name: m.Name(), Args: args, Dir: parent}
}

// Create runs the external project generator
func (m *Manager) Create(ctx context.Context, parent, project, template string) error {
	return m.run(ctx, m.CreateCommand(parent, project, template))
}

// Install installs the dependencies declared in package.json
func (m *Manager) Install(ctx context.Context, root string) error {
	return m.run(ctx, runner.Command{Name: m.Name(), Args: []string{"install"}, Dir: root})
}

// AddCommand builds the command adding packages to the project
func (m *Manager) AddCommand(root string, packages ...string) runner.Command {
	args := append([]string{m.info.AddVerb}, packages...)
	return runner.Command{Name: m.Name(), Args: args, Dir: root}
}

// Add installs packages with a single blocking invocation
func (m *Manager) Add(ctx context.Context, root string, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	return m.run(ctx, m.AddCommand(root, packages...))
}

// ExecCommand builds a one-off tool invocation through the exec prefix
// (npx, yarn dlx, pnpm dlx).
func (m *Manager) ExecCommand(root string, tool ...string) runner.Command {
	prefix := m.info.Exec
	args := append(append([]string{}, prefix[1:]...), tool...)
	return runner.Command{Name: prefix[0], Args: args, Dir: root}
}

// Exec runs a one-off tool
func (m *Manager) Exec(ctx context.Context, root string, tool ...string) error {
	return m.run(ctx, m.ExecCommand(root, tool...))
}

// RunScript runs a package.json script
func (m *Manager) RunScript(ctx context.Context, root, script string) error {
	return m.run(ctx, runner.Command{Name: m.Name(), Args: []string{"run", script}, Dir: root})
}

func (m *Manager) run(ctx context.Context, cmd runner.Command) error {
	_, err := m.runner.Run(ctx, cmd)
	return err
}
