package patch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barisgit/vitekit/internal/testutil"
)

func TestBootstrapAllFeatures(t *testing.T) {
	ctx := context.Background()

	withCSS, err := PrependImport(ctx, []byte(testutil.MainTS), Import{Source: "./index.css"})
	require.NoError(t, err)

	out, err := Bootstrap(ctx, withCSS, MainOptions{Router: true, Pinia: true, PiniaPersist: true})
	require.NoError(t, err)

	expected := `import piniaPluginPersistedstate from 'pinia-plugin-persistedstate'
import { createPinia } from 'pinia'
import router from './router'
import './index.css'
import { createApp } from 'vue'
import './style.css'
import App from './App.vue'

const app = createApp(App)
app.use(router)
const pinia = createPinia()
pinia.use(piniaPluginPersistedstate)
app.use(pinia)
app.mount('#app')
`
	assert.Equal(t, expected, string(out))
}

func TestBootstrapMinimal(t *testing.T) {
	out, err := Bootstrap(context.Background(), []byte(testutil.MainTS), MainOptions{})
	require.NoError(t, err)

	expected := `import { createApp } from 'vue'
import './style.css'
import App from './App.vue'

const app = createApp(App)
app.mount('#app')
`
	assert.Equal(t, expected, string(out))
}

func TestBootstrapPersistRequiresPinia(t *testing.T) {
	out, err := Bootstrap(context.Background(), []byte(testutil.MainTS), MainOptions{PiniaPersist: true})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "persistedstate")
}

func TestBootstrapKeepsSemicolonsAndSelector(t *testing.T) {
	src := "import { createApp } from 'vue';\nimport App from './App.vue';\n\ncreateApp(App).mount('#root');\n"

	out, err := Bootstrap(context.Background(), []byte(src), MainOptions{Router: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), "const app = createApp(App);\napp.use(router);\napp.mount('#root');\n")
}

func TestBootstrapIsIdempotent(t *testing.T) {
	opts := MainOptions{Router: true, Pinia: true}

	once, err := Bootstrap(context.Background(), []byte(testutil.MainTS), opts)
	require.NoError(t, err)
	twice, err := Bootstrap(context.Background(), once, opts)
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))
}

func TestBootstrapMissingMount(t *testing.T) {
	src := "import { createApp } from 'vue'\nimport App from './App.vue'\n\nconst root = createApp(App)\nroot.mount('#app')\n"

	out, err := Bootstrap(context.Background(), []byte(src), MainOptions{Router: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAnchorNotFound))
	assert.Equal(t, src, string(out))
}

func TestPrependImportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	css := Import{Source: "./index.css"}

	once, err := PrependImport(ctx, []byte(testutil.MainTS), css)
	require.NoError(t, err)
	assert.Equal(t, "import './index.css'\n"+testutil.MainTS, string(once))

	twice, err := PrependImport(ctx, once, css)
	require.NoError(t, err)
	assert.Equal(t, string(once), string(twice))
}

func TestMainImportsOrder(t *testing.T) {
	imports := MainImports(MainOptions{Router: true, Pinia: true, PiniaPersist: true})
	require.Len(t, imports, 3)
	assert.Equal(t, "pinia-plugin-persistedstate", imports[0].Source)
	assert.Equal(t, "pinia", imports[1].Source)
	assert.Equal(t, "./router", imports[2].Source)
}
