package scaffold

import (
	"fmt"

	"github.com/barisgit/vitekit/config"
	"github.com/barisgit/vitekit/internal/frontend"
)

// InstallStep is one blocking package install
type InstallStep struct {
	Name     string // feature name, or ui:<id> for component libraries
	Packages []string
}

// InstallPlan returns the optional installs implied by cfg, in run order.
// The persistence plugin is only ever planned together with pinia.
func InstallPlan(cfg *config.ProjectConfig, catalog *frontend.RegistryManager) ([]InstallStep, error) {
	var steps []InstallStep

	feature := func(name string) error {
		packages := catalog.FeaturePackages(name)
		if len(packages) == 0 {
			return fmt.Errorf("no packages registered for feature %s", name)
		}
		steps = append(steps, InstallStep{Name: name, Packages: packages})
		return nil
	}

	var names []string
	if cfg.UseRouter {
		names = append(names, frontend.FeatureRouter)
	}
	if cfg.UseTailwind {
		names = append(names, frontend.FeatureTailwind)
	}
	if cfg.UsePinia {
		names = append(names, frontend.FeaturePinia)
		if cfg.UsePiniaPersist {
			names = append(names, frontend.FeaturePiniaPersist)
		}
	}
	names = append(names, frontend.FeatureAutoImport, frontend.FeatureComponents)

	for _, name := range names {
		if err := feature(name); err != nil {
			return nil, err
		}
	}

	for _, id := range cfg.UIFrameworks {
		fw, ok := catalog.GetFramework(id)
		if !ok {
			return nil, fmt.Errorf("unknown UI framework %q", id)
		}
		steps = append(steps, InstallStep{Name: "ui:" + fw.ID, Packages: []string{fw.Package}})
	}

	return steps, nil
}

// AutoImports returns the modules AutoImport is configured with
func AutoImports(cfg *config.ProjectConfig) []string {
	imports := []string{"vue"}
	if cfg.UseRouter {
		imports = append(imports, "vue-router")
	}
	if cfg.UsePinia {
		imports = append(imports, "pinia")
	}
	return imports
}
