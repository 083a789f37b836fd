// Package patch applies structural edits to the files generated by
// create-vite. TypeScript sources are parsed with tree-sitter and edited by
// byte range, package.json is edited with RFC 6902 JSON patches.
package patch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrAnchorNotFound is returned when the structure a patch edits is missing.
// The source is returned unchanged alongside it.
var ErrAnchorNotFound = errors.New("anchor not found")

// Edit replaces src[Start:End] with Text
type Edit struct {
	Start uint32
	End   uint32
	Text  string
}

// Import is a single ES import declaration
type Import struct {
	Clause string // empty for side-effect imports
	Source string
}

// Line renders the import the way create-vite writes them
func (i Import) Line() string {
	if i.Clause == "" {
		return fmt.Sprintf("import '%s'", i.Source)
	}
	return fmt.Sprintf("import %s from '%s'", i.Clause, i.Source)
}

// Apply applies non-overlapping edits back to front so earlier offsets stay valid
func Apply(src []byte, edits []Edit) []byte {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})

	out := append([]byte(nil), src...)
	for _, e := range sorted {
		var buf []byte
		buf = append(buf, out[:e.Start]...)
		buf = append(buf, e.Text...)
		buf = append(buf, out[e.End:]...)
		out = buf
	}
	return out
}

func parseTypeScript(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TypeScript: %w", err)
	}
	return tree, nil
}

func text(n *sitter.Node, src []byte) string {
	return string(src[n.StartByte():n.EndByte()])
}

// stringValue returns the contents of a string literal node without quotes
func stringValue(n *sitter.Node, src []byte) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "string_fragment" {
			return text(child, src)
		}
	}
	return strings.Trim(text(n, src), "\"'`")
}

// importSources returns the module sources of the top-level imports and the
// end offset of the last one (0 when there are none).
func importSources(root *sitter.Node, src []byte) (map[string]bool, uint32, bool) {
	sources := make(map[string]bool)
	var end uint32
	found := false
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "import_statement" {
			continue
		}
		if source := child.ChildByFieldName("source"); source != nil {
			sources[stringValue(source, src)] = true
		}
		end = child.EndByte()
		found = true
	}
	return sources, end, found
}

// walk visits n and its descendants depth first until fn returns false
func walk(n *sitter.Node, fn func(*sitter.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if !walk(n.NamedChild(i), fn) {
			return false
		}
	}
	return true
}

// calleeName returns the identifier a call_expression invokes, or ""
func calleeName(call *sitter.Node, src []byte) string {
	if call == nil || call.Type() != "call_expression" {
		return ""
	}
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Type() != "identifier" {
		return ""
	}
	return text(fn, src)
}

// lineIndent returns the indentation for n. A node that shares its line with
// other code sits one unit past the indentation of that line.
func lineIndent(n *sitter.Node, src []byte) string {
	start := int(n.StartByte())
	lineStart := strings.LastIndexByte(string(src[:start]), '\n') + 1
	prefix := string(src[lineStart:start])
	rest := strings.TrimLeft(prefix, " \t")
	if rest == "" {
		return prefix
	}
	leading := prefix[:len(prefix)-len(rest)]
	return leading + indentUnit(leading)
}

func indentUnit(indent string) string {
	if strings.Contains(indent, "\t") {
		return "\t"
	}
	return "  "
}
