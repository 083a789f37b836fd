package frontend

// Registry represents the structure of the catalog YAML
type Registry struct {
	Name            string               `yaml:"name"`
	Description     string               `yaml:"description"`
	Version         string               `yaml:"version"`
	Generator       GeneratorInfo        `yaml:"generator"`
	UIFrameworks    []UIFrameworkInfo    `yaml:"ui_frameworks"`
	PackageManagers []PackageManagerInfo `yaml:"package_managers"`
	Features        map[string][]string  `yaml:"features"`
	Tools           ToolsInfo            `yaml:"tools"`
	Runtime         RuntimeInfo          `yaml:"runtime"`
}

// GeneratorInfo describes the external project generator
type GeneratorInfo struct {
	Package string `yaml:"package"`
}

// UIFrameworkInfo describes a Vue component library and its resolver
type UIFrameworkInfo struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Package     string `yaml:"package"`
	Resolver    string `yaml:"resolver"`
}

// PackageManagerInfo describes how to drive one package manager.
// Create arguments may contain {{generator}}, {{name}} and {{template}}.
type PackageManagerInfo struct {
	Name       string   `yaml:"name"`
	AddVerb    string   `yaml:"add_verb"`
	Exec       []string `yaml:"exec"`
	Create     []string `yaml:"create"`
	MinVersion string   `yaml:"min_version"`
}

// ToolsInfo lists one-off tool invocations run through the exec prefix
type ToolsInfo struct {
	TailwindInit []string `yaml:"tailwind_init"`
	ESLintConfig []string `yaml:"eslint_config"`
}

// RuntimeInfo holds requirements on the JavaScript runtime
type RuntimeInfo struct {
	NodeMinVersion string `yaml:"node_min_version"`
}

// Feature names used as keys of Registry.Features
const (
	FeatureRouter       = "router"
	FeatureTailwind     = "tailwind"
	FeaturePinia        = "pinia"
	FeaturePiniaPersist = "pinia-persist"
	FeatureAutoImport   = "auto-import"
	FeatureComponents   = "components"
)
