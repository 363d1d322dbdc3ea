package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Shape identifies which of the three write-target shapes of spec §4.3 a
// node represents.
type Shape int

const (
	// ShapeSuppressed marks a write whose target is the conventional
	// self-reference; spec §4.6 requires such assignments be returned as
	// all-null so they never pollute the definition table.
	ShapeSuppressed Shape = iota
	ShapeBare
	ShapeIndex
	ShapeAttribute
)

// LHS is the (variable, attribute, index) triple of spec §4.6, with exactly
// one of Attribute/Index populated (or neither, for a bare name).
type LHS struct {
	Shape      Shape
	Variable   string
	Attribute  string
	Index      string
	IndexKnown bool
}

// ExtractLHS classifies the left-hand side of an assignment or augmented
// assignment node. selfName is the conventional self-reference name (e.g.
// "self") whose bare-name writes (self = e) and attribute writes
// (self.a = e) are suppressed per spec §4.6. Grounded on
// Analyzer.extractIdentifiers's index_expression/selector_expression
// node-type switch (analyzer/identifier.go), adapted to the Python
// grammar's subscript/attribute node types.
func ExtractLHS(f *Facade, left *sitter.Node, selfName string) LHS {
	switch left.Type() {
	case "identifier":
		name := f.Text(left)
		if name == selfName {
			return LHS{Shape: ShapeSuppressed}
		}
		return LHS{Shape: ShapeBare, Variable: name}
	case "subscript":
		obj := left.ChildByFieldName("value")
		idx := left.ChildByFieldName("subscript")
		if obj == nil || obj.Type() != "identifier" {
			return LHS{Shape: ShapeSuppressed}
		}
		key, ok := NormalizeKey(f, idx)
		return LHS{Shape: ShapeIndex, Variable: f.Text(obj), Index: key, IndexKnown: ok}
	case "attribute":
		obj := left.ChildByFieldName("object")
		attr := left.ChildByFieldName("attribute")
		if obj == nil || attr == nil || obj.Type() != "identifier" || f.Text(obj) == selfName {
			return LHS{Shape: ShapeSuppressed}
		}
		return LHS{Shape: ShapeAttribute, Variable: f.Text(obj), Attribute: f.Text(attr)}
	default:
		return LHS{Shape: ShapeSuppressed}
	}
}

// NormalizeKey normalizes a subscript index expression to its textual form
// (spec §4.6 "Subscript-key normalization"): integer literals become their
// decimal text, bare names become the name itself, and the specific form
// negative-one becomes "-1". Any other expression yields ok=false (⊥).
func NormalizeKey(f *Facade, idx *sitter.Node) (string, bool) {
	if idx == nil {
		return "", false
	}
	switch idx.Type() {
	case "integer":
		return f.Text(idx), true
	case "identifier":
		return f.Text(idx), true
	case "unary_operator":
		op := idx.ChildByFieldName("operator")
		arg := idx.ChildByFieldName("argument")
		if op != nil && arg != nil && f.Text(op) == "-" && arg.Type() == "integer" && f.Text(arg) == "1" {
			return "-1", true
		}
		return "", false
	default:
		return "", false
	}
}

// AttributeReceiver reports whether the node at iid is actually the
// receiver of an adjacent attribute access rather than a standalone read
// (spec §4.6 "Attribute-read disambiguation"): the heuristic compares the
// current iid's location to that of iid+1 and, on a same-start/
// contained-end match, recovers the attribute name by re-parsing the
// textual slice of the next node from the source line.
func AttributeReceiver(f *Facade, iid int) (attribute string, isReceiver bool) {
	cur, ok := f.Location(iid)
	if !ok {
		return "", false
	}
	next, ok := f.Location(iid + 1)
	if !ok {
		return "", false
	}
	if !cur.SameStart(next) || next.EndColumn < cur.EndColumn {
		return "", false
	}
	if cur.EndColumn > next.EndColumn {
		return "", false
	}
	line := f.LineText(next.StartLine)
	start, end := next.StartColumn-1, next.EndColumn-1
	if start < 0 || end > len(line) || start >= end {
		return "", false
	}
	slice := line[start:end]
	idx := strings.LastIndexByte(slice, '.')
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(slice[idx+1:]), true
}
