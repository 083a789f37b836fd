package pkgmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barisgit/vitekit/config"
	"github.com/barisgit/vitekit/internal/frontend"
	"github.com/barisgit/vitekit/internal/runner"
	"github.com/barisgit/vitekit/internal/testutil"
)

func newManager(t *testing.T, pm config.PackageManager) (*Manager, *testutil.FakeRunner) {
	t.Helper()
	catalog, err := frontend.NewRegistryManager()
	require.NoError(t, err)
	fake := testutil.NewFakeRunner()
	m, err := New(fake, catalog, pm)
	require.NoError(t, err)
	return m, fake
}

func TestCreateCommand(t *testing.T) {
	tests := []struct {
		pm       config.PackageManager
		expected string
	}{
		{config.NPM, "npm create vite@latest demo -- --template vue-ts"},
		{config.Yarn, "yarn create vite demo --template vue-ts"},
		{config.PNPM, "pnpm create vite@latest demo --template vue-ts"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pm), func(t *testing.T) {
			m, _ := newManager(t, tt.pm)
			cmd := m.CreateCommand("/work", "demo", "vue-ts")
			assert.Equal(t, tt.expected, cmd.String())
			assert.Equal(t, "/work", cmd.Dir)
		})
	}
}

func TestAddVerb(t *testing.T) {
	tests := []struct {
		pm       config.PackageManager
		expected string
	}{
		{config.NPM, "npm install pinia pinia-plugin-persistedstate"},
		{config.Yarn, "yarn add pinia pinia-plugin-persistedstate"},
		{config.PNPM, "pnpm install pinia pinia-plugin-persistedstate"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pm), func(t *testing.T) {
			m, fake := newManager(t, tt.pm)
			require.NoError(t, m.Add(context.Background(), "/work/demo", "pinia", "pinia-plugin-persistedstate"))

			calls := fake.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.expected, calls[0].String())
			assert.Equal(t, "/work/demo", calls[0].Dir)
		})
	}
}

func TestAddNothingIsNoop(t *testing.T) {
	m, fake := newManager(t, config.NPM)
	require.NoError(t, m.Add(context.Background(), "/work/demo"))
	assert.Empty(t, fake.Calls())
}

func TestExecPrefix(t *testing.T) {
	tests := []struct {
		pm       config.PackageManager
		expected string
	}{
		{config.NPM, "npx tailwindcss init -p"},
		{config.Yarn, "yarn dlx tailwindcss init -p"},
		{config.PNPM, "pnpm dlx tailwindcss init -p"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pm), func(t *testing.T) {
			m, fake := newManager(t, tt.pm)
			require.NoError(t, m.Exec(context.Background(), "/work/demo", "tailwindcss", "init", "-p"))
			assert.Equal(t, []string{tt.expected}, fake.CommandLines())
		})
	}
}

func TestInstallAndRunScript(t *testing.T) {
	m, fake := newManager(t, config.PNPM)
	ctx := context.Background()

	require.NoError(t, m.Install(ctx, "/work/demo"))
	require.NoError(t, m.RunScript(ctx, "/work/demo", "lint:fix"))

	assert.Equal(t, []string{"pnpm install", "pnpm run lint:fix"}, fake.CommandLines())
}

func TestErrorsPropagate(t *testing.T) {
	m, fake := newManager(t, config.NPM)
	fake.Fail("npm install", 1)

	err := m.Add(context.Background(), "/work/demo", "vue-router@4")
	var exitErr *runner.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}

func TestNewUnknownManager(t *testing.T) {
	catalog, err := frontend.NewRegistryManager()
	require.NoError(t, err)

	_, err = New(testutil.NewFakeRunner(), catalog, config.PackageManager("bun"))
	assert.Error(t, err)
}
