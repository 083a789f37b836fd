package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingVars = []string{
	"VITEKIT_DEBUG", "VITEKIT_ANSWERS", "VITEKIT_TEMPLATE",
	"VITEKIT_GIT", "VITEKIT_COMMIT_MESSAGE", "VITEKIT_SKIP_PREFLIGHT",
}

// cleanEnv runs the test in an empty directory with every setting unset
func cleanEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, name := range settingVars {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanEnv(t)

	settings, err := Load()
	require.NoError(t, err)

	assert.False(t, settings.Debug)
	assert.Empty(t, settings.AnswersFile)
	assert.Equal(t, "vue-ts", settings.Template)
	assert.Equal(t, "git", settings.GitBinary)
	assert.Equal(t, "Initial commit", settings.CommitMessage)
	assert.False(t, settings.SkipPreflight)
}

func TestLoadOverrides(t *testing.T) {
	cleanEnv(t)
	t.Setenv("VITEKIT_DEBUG", "true")
	t.Setenv("VITEKIT_ANSWERS", "answers.yaml")
	t.Setenv("VITEKIT_TEMPLATE", "vue")
	t.Setenv("VITEKIT_GIT", "/usr/local/bin/git")
	t.Setenv("VITEKIT_COMMIT_MESSAGE", "chore: scaffold")
	t.Setenv("VITEKIT_SKIP_PREFLIGHT", "1")

	settings, err := Load()
	require.NoError(t, err)

	assert.True(t, settings.Debug)
	assert.Equal(t, "answers.yaml", settings.AnswersFile)
	assert.Equal(t, "vue", settings.Template)
	assert.Equal(t, "/usr/local/bin/git", settings.GitBinary)
	assert.Equal(t, "chore: scaffold", settings.CommitMessage)
	assert.True(t, settings.SkipPreflight)
}

func TestLoadInvalidBool(t *testing.T) {
	cleanEnv(t)
	t.Setenv("VITEKIT_DEBUG", "maybe")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadReadsDotEnv(t *testing.T) {
	cleanEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("VITEKIT_COMMIT_MESSAGE=from dotenv\n"), 0644))

	settings, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from dotenv", settings.CommitMessage)
	os.Unsetenv("VITEKIT_COMMIT_MESSAGE")
}

func TestLoadWithoutDotEnv(t *testing.T) {
	cleanEnv(t)

	settings, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "vue-ts", settings.Template)
}
