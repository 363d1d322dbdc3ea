package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// FindCriterion scans all comments in the syntax tree and returns the line
// number of the first comment whose text contains marker (spec §4.6
// "Criterion finder"). Grounded on Analyzer.extractAnnotations's
// comment-scanning approach (analyzer/meta.go), adapted from a backward
// line-by-line scan for annotations to a forward tree walk for comment
// nodes, since criterion lookup has no "preceding declaration" anchor to
// scan backward from.
func FindCriterion(f *Facade, marker string) (int, bool) {
	line, ok := -1, false
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if ok {
			return
		}
		if n.Type() == "comment" {
			if strings.Contains(f.Text(n), marker) {
				line = f.LocationOf(n).StartLine
				ok = true
				return
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
			if ok {
				return
			}
		}
	}
	walk(f.Root())
	return line, ok
}
