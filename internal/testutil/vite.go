package testutil

import (
	"os"
	"path/filepath"
)

// Files produced by `create vite --template vue-ts` that the CLI patches.
const (
	ViteConfig = `import { defineConfig } from 'vite'
import vue from '@vitejs/plugin-vue'

// https://vite.dev/config/
export default defineConfig({
  plugins: [vue()],
})
`

	MainTS = `import { createApp } from 'vue'
import './style.css'
import App from './App.vue'

createApp(App).mount('#app')
`

	PackageJSON = `{
  "name": "demo",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vue-tsc -b && vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "vue": "^3.5.13"
  },
  "devDependencies": {
    "@vitejs/plugin-vue": "^5.2.1",
    "typescript": "~5.6.2",
    "vite": "^6.0.5",
    "vue-tsc": "^2.2.0"
  }
}
`
)

// WriteViteProject lays out the generator output under root
func WriteViteProject(root string) error {
	files := map[string]string{
		"vite.config.ts": ViteConfig,
		"src/main.ts":    MainTS,
		"package.json":   PackageJSON,
		"src/style.css":  ":root { font-family: sans-serif; }\n",
		"src/App.vue":    "<template><div>App</div></template>\n",
		"index.html":     "<!doctype html>\n<div id=\"app\"></div>\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}
