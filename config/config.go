package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// UIFramework identifies a Vue component library from the catalog
type UIFramework string

const (
	AntDesignVue UIFramework = "antdv"
	ElementPlus  UIFramework = "element-plus"
	ArcoDesign   UIFramework = "arco"
	NaiveUI      UIFramework = "naive"
)

// UIFrameworks lists every supported component library in catalog order
var UIFrameworks = []UIFramework{AntDesignVue, ElementPlus, ArcoDesign, NaiveUI}

// PackageManager identifies the Node package manager used for a whole run
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
)

// PackageManagers lists the supported package managers in prompt order
var PackageManagers = []PackageManager{NPM, Yarn, PNPM}

// DefaultProjectName is offered when the user is asked for a project name
const DefaultProjectName = "my-vue-project"

// ProjectConfig holds the answers collected for one scaffolding run.
// It is built once and never mutated afterwards.
type ProjectConfig struct {
	Name            string         `yaml:"name"`
	UIFrameworks    []UIFramework  `yaml:"ui_frameworks,omitempty"`
	UseRouter       bool           `yaml:"router"`
	UseTailwind     bool           `yaml:"tailwind"`
	UsePinia        bool           `yaml:"pinia"`
	UsePiniaPersist bool           `yaml:"pinia_persist"`
	PackageManager  PackageManager `yaml:"package_manager"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error in field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (errs ValidationErrors) HasErrors() bool {
	return len(errs) > 0
}

// ConfigLoadOptions provides options for loading an answers file
type ConfigLoadOptions struct {
	Path              string
	ValidateStructure bool
	ApplyDefaults     bool
}

// DefaultLoadOptions returns sensible defaults for answers loading
func DefaultLoadOptions() ConfigLoadOptions {
	return ConfigLoadOptions{
		Path:              "vitekit.yaml",
		ValidateStructure: true,
		ApplyDefaults:     true,
	}
}

// ConfigManager handles answers file loading and validation
type ConfigManager struct {
	options ConfigLoadOptions
}

// NewConfigManager creates a new configuration manager
func NewConfigManager(options ConfigLoadOptions) *ConfigManager {
	return &ConfigManager{
		options: options,
	}
}

// LoadConfig loads the answers file configured in the options
func (cm *ConfigManager) LoadConfig() (*ProjectConfig, error) {
	return cm.LoadConfigFromPath(cm.options.Path)
}

// LoadConfigFromPath loads answers from a specific path
func (cm *ConfigManager) LoadConfigFromPath(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("answers file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}

	var config ProjectConfig
	if cm.options.ApplyDefaults {
		// omitted answers keep the questionnaire defaults
		config = DefaultConfig()
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse answers file %s: %w\n\nPlease check your YAML syntax", path, err)
	}

	if cm.options.ApplyDefaults {
		ApplyDefaults(&config)
	}

	if cm.options.ValidateStructure {
		if errs := Validate(&config); errs.HasErrors() {
			return nil, fmt.Errorf("answers validation failed:\n%s", formatValidationErrors(errs))
		}
	}

	return &config, nil
}

// DefaultConfig returns the answers a user gets by pressing enter on every question
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Name:           DefaultProjectName,
		UseRouter:      true,
		UsePinia:       true,
		PackageManager: NPM,
	}
}

// ApplyDefaults fills empty name and package manager fields
func ApplyDefaults(config *ProjectConfig) {
	if config.Name == "" {
		config.Name = DefaultProjectName
	}
	if config.PackageManager == "" {
		config.PackageManager = NPM
	}
}

var packageNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._~-]*$`)

// ValidateProjectName checks that name is usable both as a directory name
// and as an npm package name.
func ValidateProjectName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("project name cannot be empty")
	case len(name) > 214:
		return fmt.Errorf("project name must be at most 214 characters")
	case name == "." || name == "..":
		return fmt.Errorf("project name cannot be a relative path")
	case name == "node_modules" || name == "favicon.ico":
		return fmt.Errorf("project name '%s' is reserved", name)
	case strings.ToLower(name) != name:
		return fmt.Errorf("project name must be lowercase")
	case !packageNamePattern.MatchString(name):
		return fmt.Errorf("project name may only contain a-z, 0-9, '-', '.', '_' and '~' and must start with a letter or digit")
	}
	return nil
}

// Validate performs validation on collected answers
func Validate(config *ProjectConfig) ValidationErrors {
	var errors ValidationErrors

	if err := ValidateProjectName(config.Name); err != nil {
		errors = append(errors, ValidationError{
			Field:   "name",
			Value:   config.Name,
			Message: err.Error(),
		})
	}

	seen := make(map[UIFramework]bool)
	for _, fw := range config.UIFrameworks {
		if !containsFramework(UIFrameworks, fw) {
			errors = append(errors, ValidationError{
				Field:   "ui_frameworks",
				Value:   fw,
				Message: fmt.Sprintf("unsupported UI framework '%s', valid options are: %s", fw, joinFrameworks(UIFrameworks)),
			})
			continue
		}
		if seen[fw] {
			errors = append(errors, ValidationError{
				Field:   "ui_frameworks",
				Value:   fw,
				Message: "UI framework selected more than once",
			})
		}
		seen[fw] = true
	}

	if config.UsePiniaPersist && !config.UsePinia {
		errors = append(errors, ValidationError{
			Field:   "pinia_persist",
			Value:   config.UsePiniaPersist,
			Message: "the persistence plugin requires pinia",
		})
	}

	if !containsPackageManager(PackageManagers, config.PackageManager) {
		errors = append(errors, ValidationError{
			Field:   "package_manager",
			Value:   config.PackageManager,
			Message: fmt.Sprintf("unsupported package manager '%s', valid options are: npm, yarn, pnpm", config.PackageManager),
		})
	}

	return errors
}

// formatValidationErrors formats validation errors in a user-friendly way
func formatValidationErrors(errors ValidationErrors) string {
	var lines []string
	for i, err := range errors {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, err.Error()))
	}
	return strings.Join(lines, "\n")
}

func containsFramework(slice []UIFramework, item UIFramework) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func containsPackageManager(slice []PackageManager, item PackageManager) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func joinFrameworks(fws []UIFramework) string {
	names := make([]string, len(fws))
	for i, fw := range fws {
		names[i] = string(fw)
	}
	return strings.Join(names, ", ")
}
