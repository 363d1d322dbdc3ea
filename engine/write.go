package engine

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dynslice/model"
	"github.com/viant/dynslice/syntax"
)

// OnWrite implements the three write-target shapes of spec §4.3 for a plain
// assignment. A bare-name write records no data dependency of its own: any
// data dependency it carries arrives through the on_read hooks fired while
// its right-hand side was evaluated, on the same line. It does record the
// header lines of the enclosing control-flow frames. Indexed and
// attribute writes do record a dependency, since they partially update an
// existing container rather than replacing a value outright.
func (s *Session) OnWrite(ev WriteEvent) error {
	line, ok := s.inScope(ev.IID)
	if !ok {
		return nil
	}
	node := s.facade.NodeByIID(ev.IID)
	left := node.ChildByFieldName("left")
	if left == nil {
		return nil
	}
	lhs := syntax.ExtractLHS(s.facade, left, s.config.SelfName)

	switch lhs.Shape {
	case syntax.ShapeSuppressed:
		return nil
	case syntax.ShapeBare:
		return s.writeBare(line, lhs, node, ev.TypeTag)
	case syntax.ShapeIndex:
		return s.writeIndex(line, lhs)
	case syntax.ShapeAttribute:
		return s.writeAttribute(line, lhs)
	}
	return nil
}

func (s *Session) writeBare(line int, lhs syntax.LHS, node *sitter.Node, typeTag string) error {
	s.table.ReassignVariable(lhs.Variable, line, typeTag)
	s.graph.Record(line, s.baseDeps())
	if model.IsImmutableType(typeTag) {
		return nil
	}
	if right := node.ChildByFieldName("right"); right != nil && right.Type() == "identifier" {
		rhsName := s.facade.Text(right)
		s.table.LinkAlias(lhs.Variable, rhsName)
	}
	return nil
}

// writeIndex implements the indexed-write row of spec §4.3's target-shape
// table: the element record advances, and so does the container variable's
// own active_def/previous_def, since the container's observable content
// changed even though its identity did not.
func (s *Session) writeIndex(line int, lhs syntax.LHS) error {
	v := s.table.Lookup(lhs.Variable)
	if v == nil {
		return unknownReceiver(lhs.Variable, line)
	}
	priorActive := v.ActiveDef
	deps := s.baseDeps()
	deps[priorActive] = struct{}{}
	if lhs.IndexKnown {
		v.Element(lhs.Index, line)
		if iv := s.table.Lookup(lhs.Index); iv != nil {
			deps[iv.ActiveDef] = struct{}{}
		}
		v.Assign(line)
	} else {
		// Non-literal key: fall back to treating the write as updating the
		// whole variable, a safe over-approximation (spec §9 Open Questions).
		v.Assign(line)
	}
	s.graph.Record(line, deps)
	return nil
}

// writeAttribute implements the attribute-write row of spec §4.3's
// target-shape table: the attribute record advances and the update
// propagates to every current alias peer, but the receiver variable's own
// active_def is left untouched.
func (s *Session) writeAttribute(line int, lhs syntax.LHS) error {
	v := s.table.Lookup(lhs.Variable)
	if v == nil {
		return unknownReceiver(lhs.Variable, line)
	}
	deps := s.baseDeps()
	deps[v.ActiveDef] = struct{}{}
	s.table.PropagateAttributeWrite(lhs.Variable, lhs.Attribute, line)
	s.graph.Record(line, deps)
	return nil
}
