package engine

import (
	"github.com/viant/dynslice/syntax"
)

// OnAugmentedWrite implements spec §4.3's augmented-write rule: "Augmented
// writes (x op= e) follow the same three shapes." An augmented write both
// reads and writes its target, so each shape's dependency set starts from
// the same read its plain counterpart would record, then applies that
// shape's write. For the bare-name case the rule adds one more wrinkle
// explicitly: the dependency set additionally includes x.previous_def if it
// existed, or L itself if this is the first ever write to x.
func (s *Session) OnAugmentedWrite(ev AugmentedWriteEvent) error {
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
		return s.augmentedBare(line, lhs, ev.TypeTag)
	case syntax.ShapeIndex:
		return s.writeIndex(line, lhs)
	case syntax.ShapeAttribute:
		return s.writeAttribute(line, lhs)
	}
	return nil
}

func (s *Session) augmentedBare(line int, lhs syntax.LHS, typeTag string) error {
	deps := s.baseDeps()
	v := s.table.Lookup(lhs.Variable)
	if v == nil {
		deps[line] = struct{}{}
		s.table.EnsureVariable(lhs.Variable, line, typeTag)
	} else {
		deps[v.ActiveDef] = struct{}{}
		if v.HasPrevious() {
			deps[v.PreviousDef] = struct{}{}
		}
		v.Assign(line)
	}
	s.graph.Record(line, deps)
	return nil
}
