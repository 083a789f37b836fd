package templates

// Manifest represents templates/manifest.yaml
type Manifest struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Version     string         `yaml:"version"`
	Artifacts   []ArtifactSpec `yaml:"artifacts"`
}

// ArtifactSpec maps one generated file to its template
type ArtifactSpec struct {
	Name     string `yaml:"name"`
	Feature  string `yaml:"feature"`
	Path     string `yaml:"path"` // slash separated, relative to the project root
	Template string `yaml:"template"`
}

// Artifact is a file ready to be written
type Artifact struct {
	Path    string
	Content []byte
}

// FeatureBase marks artifacts written on every run
const FeatureBase = "base"
