package engine

import (
	"github.com/viant/dynslice/model"
	"github.com/viant/dynslice/syntax"
)

// OnRead implements spec §4.2: it resolves the variable names textually
// referenced by the node at L, and for each one present in the definition
// table adds its active_def to L's dependency set. If the read is not the
// receiver of an adjacent attribute access (spec §4.6), it conservatively
// also pulls in the active_def of every element and attribute currently
// attached to that variable, since a bare-name read depends on its entire
// current content.
func (s *Session) OnRead(ev ReadEvent) error {
	line, ok := s.inScope(ev.IID)
	if !ok {
		return nil
	}
	node := s.facade.NodeByIID(ev.IID)
	names := syntax.ExtractReadNames(s.facade, node)
	_, isReceiver := syntax.AttributeReceiver(s.facade, ev.IID)

	deps := s.baseDeps()
	for _, name := range names {
		v := s.table.Lookup(name)
		if v == nil {
			continue
		}
		deps[v.ActiveDef] = struct{}{}
		if !isReceiver {
			for _, e := range v.Elements {
				deps[e.ActiveDef] = struct{}{}
			}
			for _, a := range v.Attributes {
				deps[a.ActiveDef] = struct{}{}
			}
		}
	}
	s.graph.Record(line, deps)
	return nil
}

// OnSubscriptRead implements spec §4.5: it depends on the receiver's own
// active_def plus, when the index normalizes to a known key with an
// existing element record, that element's active_def as well — a read of
// x[k] still observes whatever x itself currently denotes, refined by the
// narrower element history when it is available.
func (s *Session) OnSubscriptRead(ev SubscriptReadEvent) error {
	line, ok := s.inScope(ev.IID)
	if !ok {
		return nil
	}
	node := s.facade.NodeByIID(ev.IID)
	obj := node.ChildByFieldName("value")
	if obj == nil || obj.Type() != "identifier" {
		return nil
	}
	name := s.facade.Text(obj)
	v := s.table.Lookup(name)
	if v == nil {
		return unknownReceiver(name, line)
	}

	deps := s.baseDeps()
	deps[v.ActiveDef] = struct{}{}
	if idx := node.ChildByFieldName("subscript"); idx != nil {
		if key, ok := syntax.NormalizeKey(s.facade, idx); ok {
			if e, ok := v.Elements[key]; ok {
				deps[e.ActiveDef] = struct{}{}
			}
		}
	}
	s.graph.Record(line, deps)
	return nil
}

// OnAttributeRead implements the attribute-read side of spec §4.3. A
// mutator-named or bound-method-valued read advances the receiver (and its
// alias peers); any other attribute read is treated like a subscript read,
// depending on the receiver's active_def plus the named attribute's
// active_def when that attribute has been written before.
func (s *Session) OnAttributeRead(ev AttributeReadEvent) error {
	line, ok := s.inScope(ev.IID)
	if !ok {
		return nil
	}
	node := s.facade.NodeByIID(ev.IID)
	obj := node.ChildByFieldName("object")
	attrNode := node.ChildByFieldName("attribute")
	if obj == nil || attrNode == nil || obj.Type() != "identifier" {
		return nil
	}
	name := s.facade.Text(obj)
	attr := s.facade.Text(attrNode)
	v := s.table.Lookup(name)
	if v == nil {
		return unknownReceiver(name, line)
	}

	if model.Mutators[attr] || ev.IsBoundMethod {
		return s.recordMutation(line, name, attr, v)
	}

	deps := s.baseDeps()
	deps[v.ActiveDef] = struct{}{}
	if a, ok := v.Attributes[attr]; ok {
		deps[a.ActiveDef] = struct{}{}
	}
	s.graph.Record(line, deps)
	return nil
}
