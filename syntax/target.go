package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// TargetFunction describes the located target function and its body
// interval (spec §4.1: "The body interval is [header.start_line + 1,
// header.end_line]").
type TargetFunction struct {
	Node       *sitter.Node
	HeaderLine int
	BodyStart  int
	BodyEnd    int
}

// Contains reports whether line lies within the closed body interval.
func (t *TargetFunction) Contains(line int) bool {
	return line >= t.BodyStart && line <= t.BodyEnd
}

// FindFunction locates the first function_definition node named name,
// grounded on Analyzer.handleFunction's name-field lookup
// (analyzer/node.go) but stopping at the first match rather than
// registering every function, since this spec tracks exactly one target.
func FindFunction(f *Facade, name string) (*TargetFunction, bool) {
	var found *sitter.Node
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if found != nil {
			return
		}
		if n.Type() == "function_definition" {
			if nameNode := n.ChildByFieldName("name"); nameNode != nil && f.Text(nameNode) == name {
				found = n
				return
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
			if found != nil {
				return
			}
		}
	}
	walk(f.Root())
	if found == nil {
		return nil, false
	}
	loc := f.LocationOf(found)
	return &TargetFunction{
		Node:       found,
		HeaderLine: loc.StartLine,
		BodyStart:  loc.StartLine + 1,
		BodyEnd:    loc.EndLine,
	}, true
}
