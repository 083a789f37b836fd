package patch

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Sources of the unplugin imports added to vite.config.ts
const (
	AutoImportSource = "unplugin-auto-import/vite"
	ComponentsSource = "unplugin-vue-components/vite"
	ResolversSource  = "unplugin-vue-components/resolvers"

	AutoImportDTS = "src/auto-imports.d.ts"
	ComponentsDTS = "src/components.d.ts"
)

// ViteOptions describes the plugins added to vite.config.ts
type ViteOptions struct {
	AutoImports []string // modules passed to AutoImport({ imports })
	Resolvers   []string // resolver symbols, in selection order
}

// ViteImports returns the import declarations the patch adds
func ViteImports(opts ViteOptions) []Import {
	imports := []Import{
		{Clause: "AutoImport", Source: AutoImportSource},
		{Clause: "Components", Source: ComponentsSource},
	}
	if len(opts.Resolvers) > 0 {
		imports = append(imports, Import{
			Clause: "{ " + strings.Join(opts.Resolvers, ", ") + " }",
			Source: ResolversSource,
		})
	}
	return imports
}

// ViteConfig registers AutoImport and Components in the plugins array of
// `export default defineConfig({...})` and imports them.
func ViteConfig(ctx context.Context, src []byte, opts ViteOptions) ([]byte, error) {
	tree, err := parseTypeScript(ctx, src)
	if err != nil {
		return src, err
	}
	defer tree.Close()
	root := tree.RootNode()

	plugins := findPluginsArray(root, src)
	if plugins == nil {
		return src, fmt.Errorf("vite.config.ts has no defineConfig({ plugins: [...] }): %w", ErrAnchorNotFound)
	}

	var edits []Edit

	if edit, ok := pluginsEdit(plugins, src, opts); ok {
		edits = append(edits, edit)
	}

	sources, lastImport, hasImports := importSources(root, src)
	var lines []string
	for _, imp := range ViteImports(opts) {
		if !sources[imp.Source] {
			lines = append(lines, imp.Line())
		}
	}
	if len(lines) > 0 {
		if hasImports {
			edits = append(edits, Edit{Start: lastImport, End: lastImport, Text: "\n" + strings.Join(lines, "\n")})
		} else {
			edits = append(edits, Edit{Start: 0, End: 0, Text: strings.Join(lines, "\n") + "\n\n"})
		}
	}

	if len(edits) == 0 {
		return src, nil
	}
	return Apply(src, edits), nil
}

// findPluginsArray locates the array value of `plugins` inside the object
// passed to defineConfig in the default export
func findPluginsArray(root *sitter.Node, src []byte) *sitter.Node {
	var plugins *sitter.Node
	for i := 0; i < int(root.NamedChildCount()) && plugins == nil; i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "export_statement" || !hasToken(stmt, "default") {
			continue
		}
		walk(stmt, func(n *sitter.Node) bool {
			if calleeName(n, src) != "defineConfig" {
				return true
			}
			args := n.ChildByFieldName("arguments")
			if args == nil || args.NamedChildCount() == 0 {
				return false
			}
			obj := args.NamedChild(0)
			if obj.Type() != "object" {
				return false
			}
			plugins = objectArrayProperty(obj, "plugins", src)
			return false
		})
	}
	return plugins
}

func hasToken(n *sitter.Node, token string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == token {
			return true
		}
	}
	return false
}

func objectArrayProperty(obj *sitter.Node, key string, src []byte) *sitter.Node {
	for i := 0; i < int(obj.NamedChildCount()); i++ {
		pair := obj.NamedChild(i)
		if pair.Type() != "pair" {
			continue
		}
		k := pair.ChildByFieldName("key")
		v := pair.ChildByFieldName("value")
		if k == nil || v == nil {
			continue
		}
		name := text(k, src)
		if k.Type() == "string" {
			name = stringValue(k, src)
		}
		if name == key && v.Type() == "array" {
			return v
		}
	}
	return nil
}

// pluginsEdit rewrites the plugins array one element per line, keeping the
// existing elements and appending the missing unplugin calls
func pluginsEdit(plugins *sitter.Node, src []byte, opts ViteOptions) (Edit, bool) {
	var elements []string
	hasAutoImport, hasComponents := false, false

	for i := 0; i < int(plugins.NamedChildCount()); i++ {
		el := plugins.NamedChild(i)
		switch calleeName(el, src) {
		case "AutoImport":
			hasAutoImport = true
		case "Components":
			hasComponents = true
		}
		if el.Type() == "comment" {
			elements = append(elements, text(el, src))
			continue
		}
		elements = append(elements, text(el, src)+",")
	}
	if hasAutoImport && hasComponents {
		return Edit{}, false
	}

	pair := plugins.Parent()
	indent := lineIndent(pair, src)
	unit := indentUnit(indent)
	inner := indent + unit

	if !hasAutoImport {
		elements = append(elements, autoImportCall(opts.AutoImports, inner, unit))
	}
	if !hasComponents {
		elements = append(elements, componentsCall(opts.Resolvers, inner, unit))
	}

	var b strings.Builder
	b.WriteString("[\n")
	for _, el := range elements {
		b.WriteString(inner)
		b.WriteString(el)
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString("]")

	return Edit{Start: plugins.StartByte(), End: plugins.EndByte(), Text: b.String()}, true
}

func autoImportCall(imports []string, inner, unit string) string {
	quoted := make([]string, len(imports))
	for i, m := range imports {
		quoted[i] = "'" + m + "'"
	}
	return "AutoImport({\n" +
		inner + unit + "imports: [" + strings.Join(quoted, ", ") + "],\n" +
		inner + unit + "dts: '" + AutoImportDTS + "',\n" +
		inner + "}),"
}

func componentsCall(resolvers []string, inner, unit string) string {
	calls := make([]string, len(resolvers))
	for i, r := range resolvers {
		calls[i] = r + "()"
	}
	return "Components({\n" +
		inner + unit + "resolvers: [" + strings.Join(calls, ", ") + "],\n" +
		inner + unit + "dts: '" + ComponentsDTS + "',\n" +
		inner + "}),"
}
