package frontend

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/barisgit/vitekit/config"
)

//go:embed registry.yaml
var registryData []byte

// RegistryManager answers catalog lookups for the rest of the CLI
type RegistryManager struct {
	registry *Registry
}

// NewRegistryManager creates a registry manager from the embedded catalog
func NewRegistryManager() (*RegistryManager, error) {
	return LoadRegistry(registryData)
}

// LoadRegistry parses a catalog document
func LoadRegistry(data []byte) (*RegistryManager, error) {
	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	for _, pm := range registry.PackageManagers {
		if pm.AddVerb == "" || len(pm.Exec) == 0 || len(pm.Create) == 0 {
			return nil, fmt.Errorf("package manager %s is missing add_verb, exec or create", pm.Name)
		}
	}

	return &RegistryManager{
		registry: &registry,
	}, nil
}

// Registry returns the parsed catalog
func (m *RegistryManager) Registry() *Registry {
	return m.registry
}

// GetFrameworks returns all UI frameworks in catalog order
func (m *RegistryManager) GetFrameworks() []UIFrameworkInfo {
	return m.registry.UIFrameworks
}

// GetFramework returns a UI framework by its id
func (m *RegistryManager) GetFramework(id config.UIFramework) (*UIFrameworkInfo, bool) {
	for i := range m.registry.UIFrameworks {
		if m.registry.UIFrameworks[i].ID == string(id) {
			return &m.registry.UIFrameworks[i], true
		}
	}
	return nil, false
}

// Resolvers maps the selected frameworks to their resolver symbols,
// keeping the selection order.
func (m *RegistryManager) Resolvers(selected []config.UIFramework) ([]string, error) {
	resolvers := make([]string, 0, len(selected))
	for _, id := range selected {
		fw, ok := m.GetFramework(id)
		if !ok {
			return nil, fmt.Errorf("unknown UI framework %q", id)
		}
		resolvers = append(resolvers, fw.Resolver)
	}
	return resolvers, nil
}

// GetPackageManager returns the driver description for a package manager
func (m *RegistryManager) GetPackageManager(name config.PackageManager) (*PackageManagerInfo, bool) {
	for i := range m.registry.PackageManagers {
		if m.registry.PackageManagers[i].Name == string(name) {
			return &m.registry.PackageManagers[i], true
		}
	}
	return nil, false
}

// FeaturePackages returns the package specifiers installed for a feature
func (m *RegistryManager) FeaturePackages(feature string) []string {
	return m.registry.Features[feature]
}

// Tools returns the one-off tool invocations
func (m *RegistryManager) Tools() ToolsInfo {
	return m.registry.Tools
}

// NodeMinVersion returns the version constraint on node
func (m *RegistryManager) NodeMinVersion() string {
	return m.registry.Runtime.NodeMinVersion
}

// GeneratorPackage returns the create-vite package specifier
func (m *RegistryManager) GeneratorPackage() string {
	return m.registry.Generator.Package
}

// ExpandArgs replaces {{key}} placeholders in every argument
func ExpandArgs(args []string, vars map[string]string) []string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	replacer := strings.NewReplacer(pairs...)

	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = replacer.Replace(arg)
	}
	return out
}
