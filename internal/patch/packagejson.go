package patch

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Lint scripts added to package.json
const (
	LintScript    = "eslint ."
	LintFixScript = "eslint . --fix"
)

type operation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value"`
}

// LintScripts sets scripts.lint and scripts["lint:fix"], creating the scripts
// object when it is missing. Key order is preserved and the document is
// written with two-space indentation.
func LintScripts(doc []byte) ([]byte, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		return doc, fmt.Errorf("failed to parse package.json: %w", err)
	}

	var ops []operation
	if scripts, ok := top["scripts"]; !ok || bytes.Equal(bytes.TrimSpace(scripts), []byte("null")) {
		ops = append(ops, operation{Op: "add", Path: "/scripts", Value: map[string]string{}})
	}
	ops = append(ops,
		operation{Op: "add", Path: "/scripts/lint", Value: LintScript},
		operation{Op: "add", Path: "/scripts/lint:fix", Value: LintFixScript},
	)

	raw, err := json.Marshal(ops)
	if err != nil {
		return doc, fmt.Errorf("failed to encode package.json patch: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		return doc, fmt.Errorf("failed to decode package.json patch: %w", err)
	}

	options := jsonpatch.NewApplyOptions()
	options.EscapeHTML = false
	out, err := patch.ApplyIndentWithOptions(doc, "  ", options)
	if err != nil {
		return doc, fmt.Errorf("failed to patch package.json: %w", err)
	}

	if bytes.HasSuffix(doc, []byte("\n")) && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out, nil
}
