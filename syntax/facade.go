package syntax

import (
	"bytes"
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/viant/dynslice/model"
)

// Facade is the syntax facade of spec.md §2 item 1: it parses the source
// once, up front, and answers iid→node and node→position queries; the
// criterion line is found by FindCriterion and the final rewrite is done by
// Rewriter, both of which operate on a Facade. It wraps github.com/smacker/go-tree-sitter's
// Python grammar binding exactly the way
// inspector/golang/inspector_tree_sitter.go and analyzer/java_analyzer.go
// wrap their respective grammars.
type Facade struct {
	Path string
	Src  []byte

	tree *sitter.Tree

	byIID []*sitter.Node
	iidOf map[*sitter.Node]int
	lines [][]byte
}

// Parse parses src and returns a ready Facade. Parsing happens once, up
// front, because the iid index (below) needs a stable pre-order numbering
// over the whole tree.
func Parse(ctx context.Context, path string, src []byte) (*Facade, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source %s: %w", path, err)
	}

	f := &Facade{
		Path:  path,
		Src:   src,
		tree:  tree,
		iidOf: map[*sitter.Node]int{},
		lines: bytes.Split(src, []byte("\n")),
	}
	f.indexIIDs(tree.RootNode())
	return f, nil
}

// LineText returns the verbatim text of a 1-based source line, or "" if out
// of range.
func (f *Facade) LineText(line int) string {
	if line < 1 || line > len(f.lines) {
		return ""
	}
	return string(f.lines[line-1])
}

// Root returns the root node of the parsed tree.
func (f *Facade) Root() *sitter.Node {
	return f.tree.RootNode()
}

// Text returns the verbatim source text spanned by n.
func (f *Facade) Text(n *sitter.Node) string {
	return string(f.Src[n.StartByte():n.EndByte()])
}

// indexIIDs assigns a deterministic, stable instruction id to every node in
// a pre-order walk. The real instrumentation runtime that issues iids is
// out of scope (spec.md §1); this stands in for it so that hook-driven
// callers (including this repo's own tests, which play the role of the
// instrumentation runtime) can address a specific node deterministically.
func (f *Facade) indexIIDs(n *sitter.Node) {
	iid := len(f.byIID)
	f.byIID = append(f.byIID, n)
	f.iidOf[n] = iid
	for i := 0; i < int(n.ChildCount()); i++ {
		f.indexIIDs(n.Child(i))
	}
}

// IID returns the instruction id assigned to n.
func (f *Facade) IID(n *sitter.Node) int {
	return f.iidOf[n]
}

// NodeByIID resolves an opaque instruction id to its AST node (spec.md §1:
// "maps an opaque instruction id (iid) to a source location").
func (f *Facade) NodeByIID(iid int) *sitter.Node {
	if iid < 0 || iid >= len(f.byIID) {
		return nil
	}
	return f.byIID[iid]
}

// LocationOf resolves a node to its Location.
func (f *Facade) LocationOf(n *sitter.Node) model.Location {
	start := n.StartPoint()
	end := n.EndPoint()
	return model.Location{
		Path:        f.Path,
		StartLine:   int(start.Row) + 1,
		StartColumn: int(start.Column) + 1,
		EndLine:     int(end.Row) + 1,
		EndColumn:   int(end.Column) + 1,
	}
}

// Location resolves an iid directly to its Location (spec §4.1: "Every hook
// carries an iid that the syntax facade resolves to a Location").
func (f *Facade) Location(iid int) (model.Location, bool) {
	n := f.NodeByIID(iid)
	if n == nil {
		return model.Location{}, false
	}
	return f.LocationOf(n), true
}
