package syntax

import sitter "github.com/smacker/go-tree-sitter"

// ExtractReadNames collects the bare variable names textually referenced by
// the subtree rooted at n (spec §4.2 step 1: "Determine the set of
// variable names textually referenced by the node at L"). It descends into
// an attribute node's object only (not its attribute field, which names a
// property rather than a variable) and into a subscript node's value and
// index, mirroring Analyzer.extractIdentifiers's recursive descent
// (analyzer/identifier.go) adapted to the Python grammar's
// attribute/subscript node types.
func ExtractReadNames(f *Facade, n *sitter.Node) []string {
	if n == nil {
		return nil
	}
	var names []string
	seen := map[string]bool{}
	var walk func(cur *sitter.Node)
	walk = func(cur *sitter.Node) {
		switch cur.Type() {
		case "identifier":
			name := f.Text(cur)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		case "attribute":
			if obj := cur.ChildByFieldName("object"); obj != nil {
				walk(obj)
			}
		case "subscript":
			if val := cur.ChildByFieldName("value"); val != nil {
				walk(val)
			}
			if idx := cur.ChildByFieldName("subscript"); idx != nil {
				walk(idx)
			}
		default:
			for i := 0; i < int(cur.NamedChildCount()); i++ {
				walk(cur.NamedChild(i))
			}
		}
	}
	walk(n)
	return names
}
