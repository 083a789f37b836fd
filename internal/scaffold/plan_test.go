package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barisgit/vitekit/config"
	"github.com/barisgit/vitekit/internal/frontend"
)

func newCatalog(t *testing.T) *frontend.RegistryManager {
	t.Helper()
	catalog, err := frontend.NewRegistryManager()
	require.NoError(t, err)
	return catalog
}

func stepNames(steps []InstallStep) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

func TestInstallPlan(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ProjectConfig
		expected []string
	}{
		{
			name:     "minimal",
			cfg:      config.ProjectConfig{Name: "demo", PackageManager: config.NPM},
			expected: []string{"auto-import", "components"},
		},
		{
			name: "everything",
			cfg: config.ProjectConfig{
				Name:            "demo",
				UIFrameworks:    []config.UIFramework{config.NaiveUI, config.ElementPlus},
				UseRouter:       true,
				UseTailwind:     true,
				UsePinia:        true,
				UsePiniaPersist: true,
				PackageManager:  config.NPM,
			},
			expected: []string{"router", "tailwind", "pinia", "pinia-persist", "auto-import", "components", "ui:naive", "ui:element-plus"},
		},
		{
			name:     "persistence without pinia is never planned",
			cfg:      config.ProjectConfig{Name: "demo", UsePiniaPersist: true, PackageManager: config.NPM},
			expected: []string{"auto-import", "components"},
		},
		{
			name:     "pinia without persistence",
			cfg:      config.ProjectConfig{Name: "demo", UsePinia: true, PackageManager: config.NPM},
			expected: []string{"pinia", "auto-import", "components"},
		},
	}

	catalog := newCatalog(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := InstallPlan(&tt.cfg, catalog)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stepNames(steps))
		})
	}
}

func TestInstallPlanPackages(t *testing.T) {
	cfg := &config.ProjectConfig{
		Name:           "demo",
		UIFrameworks:   []config.UIFramework{config.ArcoDesign},
		UseTailwind:    true,
		PackageManager: config.NPM,
	}

	steps, err := InstallPlan(cfg, newCatalog(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"tailwindcss@3", "postcss@latest", "autoprefixer@latest"}, steps[0].Packages)
	assert.Equal(t, []string{"@arco-design/web-vue"}, steps[len(steps)-1].Packages)
}

func TestInstallPlanUnknownFramework(t *testing.T) {
	cfg := &config.ProjectConfig{Name: "demo", UIFrameworks: []config.UIFramework{"vuetify"}}
	_, err := InstallPlan(cfg, newCatalog(t))
	assert.Error(t, err)
}

func TestAutoImports(t *testing.T) {
	tests := []struct {
		cfg      config.ProjectConfig
		expected []string
	}{
		{config.ProjectConfig{}, []string{"vue"}},
		{config.ProjectConfig{UseRouter: true}, []string{"vue", "vue-router"}},
		{config.ProjectConfig{UsePinia: true, UsePiniaPersist: true}, []string{"vue", "pinia"}},
		{config.ProjectConfig{UseRouter: true, UsePinia: true}, []string{"vue", "vue-router", "pinia"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, AutoImports(&tt.cfg))
	}
}
