package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/barisgit/vitekit/config"
	"github.com/barisgit/vitekit/internal/frontend"
	"github.com/barisgit/vitekit/internal/runner"
)

// CheckResult is the outcome of probing one tool
type CheckResult struct {
	Tool       string
	Version    string
	Constraint string
	Err        error
}

// OK reports whether the tool is usable
func (c CheckResult) OK() bool {
	return c.Err == nil
}

// Checker probes the tools a scaffolding run depends on
type Checker struct {
	Runner    runner.Runner
	Catalog   *frontend.RegistryManager
	GitBinary string
}

// Check probes node, the given package manager and git
func (c *Checker) Check(ctx context.Context, pm config.PackageManager) []CheckResult {
	results := []CheckResult{c.probe(ctx, "node", c.Catalog.NodeMinVersion())}

	info, ok := c.Catalog.GetPackageManager(pm)
	if !ok {
		results = append(results, CheckResult{Tool: string(pm), Err: fmt.Errorf("unsupported package manager: %s", pm)})
	} else {
		results = append(results, c.probe(ctx, info.Name, info.MinVersion))
	}

	git := c.GitBinary
	if git == "" {
		git = "git"
	}
	return append(results, c.probe(ctx, git, ""))
}

// CheckAll probes node, git and every catalog package manager
func (c *Checker) CheckAll(ctx context.Context) []CheckResult {
	results := []CheckResult{c.probe(ctx, "node", c.Catalog.NodeMinVersion())}
	for _, pm := range c.Catalog.Registry().PackageManagers {
		results = append(results, c.probe(ctx, pm.Name, pm.MinVersion))
	}
	git := c.GitBinary
	if git == "" {
		git = "git"
	}
	return append(results, c.probe(ctx, git, ""))
}

func (c *Checker) probe(ctx context.Context, tool, constraint string) CheckResult {
	result := CheckResult{Tool: tool, Constraint: constraint}

	out, err := c.Runner.Run(ctx, runner.Command{Name: tool, Args: []string{"--version"}, Quiet: true})
	if err != nil {
		result.Err = fmt.Errorf("%s is not available: %w", tool, err)
		return result
	}

	version, err := ParseVersion(out.Output)
	if err != nil {
		if constraint == "" {
			// presence is all that is required
			result.Version = strings.TrimSpace(out.Output)
			return result
		}
		result.Err = err
		return result
	}
	result.Version = version.String()

	if constraint == "" {
		return result
	}
	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		result.Err = fmt.Errorf("invalid version constraint %q for %s: %w", constraint, tool, err)
		return result
	}
	if !cons.Check(version) {
		result.Err = fmt.Errorf("%s %s does not satisfy %s", tool, version, constraint)
	}
	return result
}

// ParseVersion extracts the first semantic version from --version output,
// e.g. "v20.11.1" or "git version 2.43.0".
func ParseVersion(output string) (*semver.Version, error) {
	for _, field := range strings.Fields(output) {
		if field == "" || !strings.ContainsAny(field[:1], "v0123456789") {
			continue
		}
		if v, err := semver.NewVersion(field); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
}

// Failed joins the errors of all failed checks, nil when everything passed
func Failed(results []CheckResult) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
