// Package templates embeds the artifact templates written into new projects.
package templates

import "embed"

// TemplatesFS holds manifest.yaml and every artifact template under files/
//
//go:embed manifest.yaml files
var TemplatesFS embed.FS
