package syntax

import (
	"bytes"

	sitter "github.com/smacker/go-tree-sitter"
)

// lineRange is an inclusive [Start,End] span of 1-based source lines to
// delete.
type lineRange struct {
	Start, End int
}

// Rewriter performs the final rewrite of spec §4.8: within the target
// function body only, it removes any top-level compound or simple
// statement whose header line is not in the keep-set, recursing into
// nested blocks (if/elif/else, for, while) so that deletion decisions are
// made construct-by-construct rather than line-by-line. It operates by
// deleting exact source-line ranges rather than re-pretty-printing the
// tree, grounded on jsx.Emitter's source-range-based reassembly
// (inspector/jsx/emitter.go) and on the routine use of
// src[n.StartByte():n.EndByte()] verbatim slicing throughout analyzer/*.go.
type Rewriter struct {
	facade *Facade
}

// NewRewriter returns a Rewriter bound to facade.
func NewRewriter(facade *Facade) *Rewriter {
	return &Rewriter{facade: facade}
}

// Rewrite produces the sliced source text, deleting every statement within
// target's body whose header line keep reports false for. Statements
// outside the target function body interval are never touched (spec §4.8:
// "Statements outside the interval are never touched").
func (r *Rewriter) Rewrite(target *TargetFunction, keep func(line int) bool) []byte {
	body := target.Node.ChildByFieldName("body")
	var deletions []lineRange
	if body != nil {
		deletions = r.walkBlock(body, keep)
	}
	return r.apply(deletions)
}

func (r *Rewriter) walkBlock(block *sitter.Node, keep func(int) bool) []lineRange {
	var out []lineRange
	for i := 0; i < int(block.NamedChildCount()); i++ {
		stmt := block.NamedChild(i)
		out = append(out, r.walkStatement(stmt, keep)...)
	}
	return out
}

func (r *Rewriter) walkStatement(n *sitter.Node, keep func(int) bool) []lineRange {
	loc := r.facade.LocationOf(n)
	switch n.Type() {
	case "if_statement":
		if !keep(loc.StartLine) {
			return []lineRange{{loc.StartLine, loc.EndLine}}
		}
		var out []lineRange
		if consequence := n.ChildByFieldName("consequence"); consequence != nil {
			out = append(out, r.walkBlock(consequence, keep)...)
		}
		// every elif_clause and the else_clause are sibling children of the
		// if_statement, so each one is visited, not only the first.
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if alt := n.NamedChild(i); alt.Type() == "elif_clause" || alt.Type() == "else_clause" {
				out = append(out, r.walkAlternative(alt, keep)...)
			}
		}
		return out
	case "for_statement", "while_statement":
		if !keep(loc.StartLine) {
			return []lineRange{{loc.StartLine, loc.EndLine}}
		}
		var out []lineRange
		if body := n.ChildByFieldName("body"); body != nil {
			out = append(out, r.walkBlock(body, keep)...)
		}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			out = append(out, r.walkAlternative(alt, keep)...)
		}
		return out
	default:
		// simple statement: single line of interest is its own header line
		if !keep(loc.StartLine) {
			return []lineRange{{loc.StartLine, loc.EndLine}}
		}
		return nil
	}
}

// walkAlternative handles an if_statement/for_statement/while_statement's
// "alternative" field, which is either an elif_clause (treated like a
// nested if) or an else_clause (spec §4.8: removed only if none of the
// lines it spans are in the keep-set).
func (r *Rewriter) walkAlternative(n *sitter.Node, keep func(int) bool) []lineRange {
	loc := r.facade.LocationOf(n)
	switch n.Type() {
	case "elif_clause":
		if !keep(loc.StartLine) {
			return []lineRange{{loc.StartLine, loc.EndLine}}
		}
		var out []lineRange
		if consequence := n.ChildByFieldName("consequence"); consequence != nil {
			out = append(out, r.walkBlock(consequence, keep)...)
		}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			out = append(out, r.walkAlternative(alt, keep)...)
		}
		return out
	case "else_clause":
		anyKept := false
		for l := loc.StartLine; l <= loc.EndLine; l++ {
			if keep(l) {
				anyKept = true
				break
			}
		}
		if !anyKept {
			return []lineRange{{loc.StartLine, loc.EndLine}}
		}
		if body := n.ChildByFieldName("body"); body != nil {
			return r.walkBlock(body, keep)
		}
		return nil
	default:
		return nil
	}
}

// apply deletes every line covered by any range in deletions from the
// facade's source, preserving every other line verbatim (spec §8 property
// 6: "Outside untouched").
func (r *Rewriter) apply(deletions []lineRange) []byte {
	doomed := map[int]bool{}
	for _, d := range deletions {
		for l := d.Start; l <= d.End; l++ {
			doomed[l] = true
		}
	}
	lines := bytes.Split(r.facade.Src, []byte("\n"))
	var out [][]byte
	for i, l := range lines {
		lineNo := i + 1
		if doomed[lineNo] {
			continue
		}
		out = append(out, l)
	}
	return bytes.Join(out, []byte("\n"))
}
