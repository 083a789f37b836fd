// Package templates provides the files vitekit adds to a generated project.
package templates

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/barisgit/vitekit/templates"
)

const manifestPath = "manifest.yaml"

// Manager reads artifacts from an embedded manifest
type Manager struct {
	fsys     fs.FS
	manifest *Manifest
}

// NewManager creates a template manager over the embedded templates
func NewManager() (*Manager, error) {
	return NewManagerFS(templates.TemplatesFS)
}

// NewManagerFS creates a template manager over any filesystem holding a
// manifest.yaml at its root
func NewManagerFS(fsys fs.FS) (*Manager, error) {
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}

	manifest, err := LoadManifestFromData(data)
	if err != nil {
		return nil, err
	}

	for _, spec := range manifest.Artifacts {
		if spec.Path == "" || spec.Template == "" {
			return nil, fmt.Errorf("artifact %s is missing path or template", spec.Name)
		}
		if _, err := fs.Stat(fsys, spec.Template); err != nil {
			return nil, fmt.Errorf("artifact %s: %w", spec.Name, err)
		}
	}

	return &Manager{fsys: fsys, manifest: manifest}, nil
}

// LoadManifestFromData parses a manifest document
func LoadManifestFromData(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}
	return &manifest, nil
}

// Manifest returns the parsed manifest
func (m *Manager) Manifest() *Manifest {
	return m.manifest
}

// ForFeature returns every artifact belonging to feature, in manifest order.
// Artifact content is fixed; features only decide which files are written.
func (m *Manager) ForFeature(feature string) ([]Artifact, error) {
	var artifacts []Artifact
	for _, spec := range m.manifest.Artifacts {
		if spec.Feature != feature {
			continue
		}
		content, err := fs.ReadFile(m.fsys, spec.Template)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", spec.Template, err)
		}
		artifacts = append(artifacts, Artifact{Path: spec.Path, Content: content})
	}
	return artifacts, nil
}
