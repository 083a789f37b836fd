package patch

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barisgit/vitekit/internal/testutil"
)

func TestLintScripts(t *testing.T) {
	out, err := LintScripts([]byte(testutil.PackageJSON))
	require.NoError(t, err)

	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	require.NoError(t, json.Unmarshal(out, &pkg))
	assert.Equal(t, "eslint .", pkg.Scripts["lint"])
	assert.Equal(t, "eslint . --fix", pkg.Scripts["lint:fix"])
	assert.Equal(t, "vite", pkg.Scripts["dev"])

	s := string(out)
	assert.Contains(t, s, "\n  \"name\": \"demo\",")
	assert.Contains(t, s, "vue-tsc -b && vite build")
	assert.Less(t, strings.Index(s, `"name"`), strings.Index(s, `"scripts"`))
	assert.Less(t, strings.Index(s, `"scripts"`), strings.Index(s, `"dependencies"`))
	assert.Less(t, strings.Index(s, `"preview"`), strings.Index(s, `"lint"`))
	assert.True(t, strings.HasSuffix(s, "}\n"))
}

func TestLintScriptsCreatesScripts(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing", `{"name": "demo"}`},
		{"null", `{"name": "demo", "scripts": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := LintScripts([]byte(tt.doc))
			require.NoError(t, err)

			var pkg struct {
				Name    string            `json:"name"`
				Scripts map[string]string `json:"scripts"`
			}
			require.NoError(t, json.Unmarshal(out, &pkg))
			assert.Equal(t, "demo", pkg.Name)
			assert.Equal(t, map[string]string{"lint": "eslint .", "lint:fix": "eslint . --fix"}, pkg.Scripts)
		})
	}
}

func TestLintScriptsOverwritesExisting(t *testing.T) {
	out, err := LintScripts([]byte(`{"scripts": {"lint": "echo old"}}`))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "echo old")
}

func TestLintScriptsIsIdempotent(t *testing.T) {
	once, err := LintScripts([]byte(testutil.PackageJSON))
	require.NoError(t, err)
	twice, err := LintScripts(once)
	require.NoError(t, err)
	assert.Equal(t, string(once), string(twice))
}

func TestLintScriptsInvalidJSON(t *testing.T) {
	doc := []byte(`{"name": `)
	out, err := LintScripts(doc)
	assert.Error(t, err)
	assert.Equal(t, doc, out)
}
