package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barisgit/vitekit/config"
)

func TestEmbeddedRegistryCoversConfigEnums(t *testing.T) {
	m, err := NewRegistryManager()
	require.NoError(t, err)

	for _, fw := range config.UIFrameworks {
		_, ok := m.GetFramework(fw)
		assert.True(t, ok, "framework %s missing from catalog", fw)
	}
	for _, pm := range config.PackageManagers {
		_, ok := m.GetPackageManager(pm)
		assert.True(t, ok, "package manager %s missing from catalog", pm)
	}
}

func TestResolversKeepSelectionOrder(t *testing.T) {
	m, err := NewRegistryManager()
	require.NoError(t, err)

	resolvers, err := m.Resolvers([]config.UIFramework{config.NaiveUI, config.ElementPlus})
	require.NoError(t, err)
	assert.Equal(t, []string{"NaiveUiResolver", "ElementPlusResolver"}, resolvers)

	resolvers, err = m.Resolvers([]config.UIFramework{config.ElementPlus, config.NaiveUI})
	require.NoError(t, err)
	assert.Equal(t, []string{"ElementPlusResolver", "NaiveUiResolver"}, resolvers)
}

func TestResolverTable(t *testing.T) {
	m, err := NewRegistryManager()
	require.NoError(t, err)

	want := map[config.UIFramework]string{
		config.AntDesignVue: "AntDesignVueResolver",
		config.ElementPlus:  "ElementPlusResolver",
		config.ArcoDesign:   "ArcoResolver",
		config.NaiveUI:      "NaiveUiResolver",
	}
	for id, resolver := range want {
		fw, ok := m.GetFramework(id)
		require.True(t, ok)
		assert.Equal(t, resolver, fw.Resolver)
	}

	resolvers, err := m.Resolvers(nil)
	require.NoError(t, err)
	assert.Empty(t, resolvers)
}

func TestResolversUnknownFramework(t *testing.T) {
	m, err := NewRegistryManager()
	require.NoError(t, err)

	_, err = m.Resolvers([]config.UIFramework{"vuetify"})
	assert.Error(t, err)
}

func TestFrameworkPackages(t *testing.T) {
	m, err := NewRegistryManager()
	require.NoError(t, err)

	arco, ok := m.GetFramework(config.ArcoDesign)
	require.True(t, ok)
	assert.Equal(t, "@arco-design/web-vue", arco.Package)

	_, ok = m.GetFramework("vuetify")
	assert.False(t, ok)
}

func TestPackageManagerVerbs(t *testing.T) {
	m, err := NewRegistryManager()
	require.NoError(t, err)

	tests := []struct {
		name config.PackageManager
		verb string
		exec []string
	}{
		{config.NPM, "install", []string{"npx"}},
		{config.Yarn, "add", []string{"yarn", "dlx"}},
		{config.PNPM, "install", []string{"pnpm", "dlx"}},
	}
	for _, tt := range tests {
		pm, ok := m.GetPackageManager(tt.name)
		require.True(t, ok)
		assert.Equal(t, tt.verb, pm.AddVerb, string(tt.name))
		assert.Equal(t, tt.exec, pm.Exec, string(tt.name))
	}
}

func TestFeaturePackages(t *testing.T) {
	m, err := NewRegistryManager()
	require.NoError(t, err)

	assert.Equal(t, []string{"vue-router@4"}, m.FeaturePackages(FeatureRouter))
	assert.Equal(t, []string{"pinia"}, m.FeaturePackages(FeaturePinia))
	assert.Equal(t, []string{"pinia-plugin-persistedstate"}, m.FeaturePackages(FeaturePiniaPersist))
	assert.Len(t, m.FeaturePackages(FeatureTailwind), 3)
	assert.Nil(t, m.FeaturePackages("unknown"))
	assert.Equal(t, []string{"@antfu/eslint-config@latest"}, m.Tools().ESLintConfig)
	assert.Equal(t, "vite@latest", m.GeneratorPackage())
	assert.NotEmpty(t, m.NodeMinVersion())
}

func TestLoadRegistryRejectsIncompletePackageManager(t *testing.T) {
	_, err := LoadRegistry([]byte("package_managers:\n  - name: bun\n"))
	assert.Error(t, err)

	_, err = LoadRegistry([]byte("ui_frameworks: [oops"))
	assert.Error(t, err)
}

func TestExpandArgs(t *testing.T) {
	args := ExpandArgs(
		[]string{"create", "{{generator}}", "{{name}}", "--", "--template", "{{template}}"},
		map[string]string{"generator": "vite@latest", "name": "demo", "template": "vue-ts"},
	)
	assert.Equal(t, []string{"create", "vite@latest", "demo", "--", "--template", "vue-ts"}, args)
}
