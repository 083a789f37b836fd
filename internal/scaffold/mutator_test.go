package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barisgit/vitekit/internal/patch"
	"github.com/barisgit/vitekit/internal/templates"
)

func newMutator(t *testing.T) *Mutator {
	t.Helper()
	tm, err := templates.NewManager()
	require.NoError(t, err)
	return NewMutator(t.TempDir(), tm)
}

func TestWriteFeatureCreatesDirectoriesAndOverwrites(t *testing.T) {
	m := newMutator(t)
	views := filepath.Join(m.Root, "src", "views")
	require.NoError(t, os.MkdirAll(views, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(views, "Home.vue"), []byte("old"), 0644))

	written, err := m.WriteFeature("router")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/router/index.ts", "src/views/Home.vue", "src/views/About.vue"}, written)

	home, err := os.ReadFile(filepath.Join(views, "Home.vue"))
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(home))

	entries, err := os.ReadDir(views)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must not be left behind")
}

func TestPatchRewritesOnlyOnChange(t *testing.T) {
	m := newMutator(t)
	path := filepath.Join(m.Root, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0600))

	changed, err := m.Patch(context.Background(), "file.txt", func(_ context.Context, src []byte) ([]byte, error) {
		return append(src, 'b'), nil
	})
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	changed, err = m.Patch(context.Background(), "file.txt", func(_ context.Context, src []byte) ([]byte, error) {
		return src, nil
	})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestPatchAnchorNotFoundLeavesFile(t *testing.T) {
	m := newMutator(t)
	path := filepath.Join(m.Root, "vite.config.ts")
	require.NoError(t, os.WriteFile(path, []byte("export default {}\n"), 0644))

	changed, err := m.Patch(context.Background(), "vite.config.ts", func(_ context.Context, src []byte) ([]byte, error) {
		return []byte("garbage"), patch.ErrAnchorNotFound
	})
	assert.False(t, changed)
	assert.True(t, errors.Is(err, patch.ErrAnchorNotFound))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export default {}\n", string(data))
}

func TestPatchMissingFile(t *testing.T) {
	m := newMutator(t)
	_, err := m.Patch(context.Background(), "src/main.ts", func(_ context.Context, src []byte) ([]byte, error) {
		return src, nil
	})
	assert.Error(t, err)
}
