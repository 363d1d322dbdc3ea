package model

// DefinitionTable maps each in-scope variable name to its current
// definition metadata (spec §3). It is owned by a single slicing session;
// the engine never shares one table across sessions (spec §9).
type DefinitionTable struct {
	vars map[string]*VariableRecord
}

// NewDefinitionTable returns an empty table.
func NewDefinitionTable() *DefinitionTable {
	return &DefinitionTable{vars: map[string]*VariableRecord{}}
}

// Lookup returns the record for name, or nil if it has never been written.
func (t *DefinitionTable) Lookup(name string) *VariableRecord {
	return t.vars[name]
}

// Exists reports whether name has a record.
func (t *DefinitionTable) Exists(name string) bool {
	_, ok := t.vars[name]
	return ok
}

// EnsureVariable returns the existing record for name, or creates one with
// active_def = line (spec §3 Lifecycles: "created on first write").
func (t *DefinitionTable) EnsureVariable(name string, line int, typeTag string) (*VariableRecord, bool) {
	if v, ok := t.vars[name]; ok {
		return v, false
	}
	v := newVariableRecord(name, line, typeTag)
	t.vars[name] = v
	return v, true
}

// ReassignVariable performs a full bare-name write (spec §3/§4.3 bare-name
// shape): advances the record (creating it if absent), clears its
// sub-records, and symmetrically unlinks every prior alias peer so that
// neither side of the broken link still references the other (invariant 5).
func (t *DefinitionTable) ReassignVariable(name string, line int, typeTag string) *VariableRecord {
	v, created := t.EnsureVariable(name, line, typeTag)
	if created {
		return v
	}
	priorAliases := v.Aliases
	v.Reassign(line, typeTag)
	for _, peer := range priorAliases {
		if p := t.vars[peer]; p != nil {
			p.Aliases = removeName(p.Aliases, name)
		}
	}
	return v
}

func removeName(names []string, target string) []string {
	out := names[:0]
	for _, n := range names {
		if n != target {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// LinkAlias establishes the symmetric alias link a ↔ b (spec §3 invariant
// 5). a must already have a record (the bare-name write that triggers
// aliasing always reassigns a first). a records b as a peer in every case;
// the reverse link b → a is made only if b already has a record of its own,
// so a name that was never written gets no record from aliasing.
func (t *DefinitionTable) LinkAlias(a, b string) {
	va := t.vars[a]
	if va == nil {
		return
	}
	va.AddAlias(b)
	if vb, ok := t.vars[b]; ok {
		vb.AddAlias(a)
	}
}

// AliasPeers returns the current alias peer names of name (empty if none or
// unknown).
func (t *DefinitionTable) AliasPeers(name string) []string {
	v := t.vars[name]
	if v == nil {
		return nil
	}
	return v.Aliases
}

// PropagateAttributeWrite applies the same AttributeRecord advancement to
// name and every one of its current alias peers (spec §4.3 attribute-write
// shape: "propagate the same update to every aliased peer").
func (t *DefinitionTable) PropagateAttributeWrite(name, attr string, line int) {
	v := t.vars[name]
	if v == nil {
		return
	}
	v.Attribute(attr, line)
	for _, peer := range v.Aliases {
		if p := t.vars[peer]; p != nil {
			p.Attribute(attr, line)
		}
	}
}

// AdvanceWithAliases advances name's active_def and every current alias
// peer's active_def to line (spec §4.3 mutating-method-call rule).
func (t *DefinitionTable) AdvanceWithAliases(name string, line int) {
	v := t.vars[name]
	if v == nil {
		return
	}
	v.Assign(line)
	for _, peer := range v.Aliases {
		if p := t.vars[peer]; p != nil {
			p.Assign(line)
		}
	}
}
