package patch

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// MainOptions selects the plugins installed on the app in src/main.ts
type MainOptions struct {
	Router       bool
	Pinia        bool
	PiniaPersist bool
}

// MainImports returns the imports bootstrap adds, in top-of-file order
func MainImports(opts MainOptions) []Import {
	var imports []Import
	if opts.Pinia && opts.PiniaPersist {
		imports = append(imports, Import{Clause: "piniaPluginPersistedstate", Source: "pinia-plugin-persistedstate"})
	}
	if opts.Pinia {
		imports = append(imports, Import{Clause: "{ createPinia }", Source: "pinia"})
	}
	if opts.Router {
		imports = append(imports, Import{Clause: "router", Source: "./router"})
	}
	return imports
}

// PrependImport adds imp as the first line unless its source is already imported
func PrependImport(ctx context.Context, src []byte, imp Import) ([]byte, error) {
	tree, err := parseTypeScript(ctx, src)
	if err != nil {
		return src, err
	}
	defer tree.Close()

	sources, _, _ := importSources(tree.RootNode(), src)
	if sources[imp.Source] {
		return src, nil
	}
	return Apply(src, []Edit{{Start: 0, End: 0, Text: imp.Line() + "\n"}}), nil
}

// Bootstrap replaces `createApp(...).mount(...)` with an app variable that
// installs the router and store before mounting.
func Bootstrap(ctx context.Context, src []byte, opts MainOptions) ([]byte, error) {
	tree, err := parseTypeScript(ctx, src)
	if err != nil {
		return src, err
	}
	defer tree.Close()
	root := tree.RootNode()

	if hasAppVariable(root, src) {
		return src, nil
	}

	stmt, create, mountArgs := findMountStatement(root, src)
	if stmt == nil {
		return src, fmt.Errorf("src/main.ts has no createApp(...).mount(...) statement: %w", ErrAnchorNotFound)
	}

	terminator := ""
	if strings.HasSuffix(strings.TrimSpace(text(stmt, src)), ";") {
		terminator = ";"
	}

	lines := []string{"const app = " + text(create, src)}
	if opts.Router {
		lines = append(lines, "app.use(router)")
	}
	if opts.Pinia {
		lines = append(lines, "const pinia = createPinia()")
		if opts.PiniaPersist {
			lines = append(lines, "pinia.use(piniaPluginPersistedstate)")
		}
		lines = append(lines, "app.use(pinia)")
	}
	lines = append(lines, "app.mount"+text(mountArgs, src))
	for i := range lines {
		lines[i] += terminator
	}

	edits := []Edit{{Start: stmt.StartByte(), End: stmt.EndByte(), Text: strings.Join(lines, "\n")}}

	sources, _, _ := importSources(root, src)
	var header strings.Builder
	for _, imp := range MainImports(opts) {
		if !sources[imp.Source] {
			header.WriteString(imp.Line() + "\n")
		}
	}
	if header.Len() > 0 {
		edits = append(edits, Edit{Start: 0, End: 0, Text: header.String()})
	}

	return Apply(src, edits), nil
}

// findMountStatement returns the top-level `createApp(...).mount(...)`
// statement with its createApp call and the mount arguments
func findMountStatement(root *sitter.Node, src []byte) (stmt, create, mountArgs *sitter.Node) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		s := root.NamedChild(i)
		if s.Type() != "expression_statement" || s.NamedChildCount() == 0 {
			continue
		}
		call := s.NamedChild(0)
		if call.Type() != "call_expression" {
			continue
		}
		member := call.ChildByFieldName("function")
		if member == nil || member.Type() != "member_expression" {
			continue
		}
		property := member.ChildByFieldName("property")
		object := member.ChildByFieldName("object")
		if property == nil || text(property, src) != "mount" || calleeName(object, src) != "createApp" {
			continue
		}
		args := call.ChildByFieldName("arguments")
		if args == nil {
			continue
		}
		return s, object, args
	}
	return nil, nil, nil
}

// hasAppVariable reports whether main.ts already declares `app = createApp(...)`
func hasAppVariable(root *sitter.Node, src []byte) bool {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		decl := root.NamedChild(i)
		if decl.Type() != "lexical_declaration" && decl.Type() != "variable_declaration" {
			continue
		}
		for j := 0; j < int(decl.NamedChildCount()); j++ {
			d := decl.NamedChild(j)
			if d.Type() != "variable_declarator" {
				continue
			}
			name := d.ChildByFieldName("name")
			value := d.ChildByFieldName("value")
			if name != nil && text(name, src) == "app" && calleeName(value, src) == "createApp" {
				return true
			}
		}
	}
	return false
}
