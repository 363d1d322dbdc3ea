package model

// Immutable is the set of runtime type tags for which a bare-name-to-bare-name
// assignment never establishes an alias (spec §4.3, target-shape table).
var Immutable = map[string]bool{
	"int": true, "float": true, "complex": true, "bool": true,
	"string": true, "bytes": true, "tuple": true, "frozenset": true,
}

// Mutators is the closed set of collection-mutator attribute names that
// advance a receiver's active_def on a method call (spec §4.3).
var Mutators = map[string]bool{
	"append": true, "extend": true, "insert": true, "remove": true,
	"pop": true, "clear": true, "reverse": true, "sort": true,
}

// noDef is the sentinel previous_def value meaning "none" (⊥), since source
// lines are 1-based and 0 never denotes a real line.
const noDef = 0

// defState is the active/previous write-line pair shared by VariableRecord,
// ElementRecord and AttributeRecord (spec §3 invariant 1).
type defState struct {
	ActiveDef   int `yaml:"activeDef"`
	PreviousDef int `yaml:"previousDef,omitempty"`
}

func newDefState(line int) defState {
	return defState{ActiveDef: line, PreviousDef: noDef}
}

// advance records a new write at line, shifting the prior active_def down
// into previous_def.
func (d *defState) advance(line int) {
	d.PreviousDef = d.ActiveDef
	d.ActiveDef = line
}

// HasPrevious reports whether previous_def is set (not ⊥).
func (d defState) HasPrevious() bool {
	return d.PreviousDef != noDef
}

// ElementRecord is the write-state of a single indexed slot of a container
// (spec §3).
type ElementRecord struct {
	defState
}

func newElementRecord(line int) *ElementRecord {
	return &ElementRecord{defState: newDefState(line)}
}

// AttributeRecord is the write-state of a single attribute on an object
// (spec §3).
type AttributeRecord struct {
	defState
}

func newAttributeRecord(line int) *AttributeRecord {
	return &AttributeRecord{defState: newDefState(line)}
}

// VariableRecord tracks the current write-state of a named variable,
// including its indexed elements, attributes, and aliasing peers (spec §3).
type VariableRecord struct {
	defState
	Name       string                      `yaml:"name"`
	Elements   map[string]*ElementRecord   `yaml:"elements,omitempty"`
	Attributes map[string]*AttributeRecord `yaml:"attributes,omitempty"`
	TypeTag    string                      `yaml:"typeTag,omitempty"`
	Aliases    []string                    `yaml:"aliases,omitempty"`
}

// newVariableRecord creates a fresh record for a first write at line.
func newVariableRecord(name string, line int, typeTag string) *VariableRecord {
	return &VariableRecord{
		defState: newDefState(line),
		Name:     name,
		TypeTag:  typeTag,
	}
}

// Assign advances active_def/previous_def without touching elements,
// attributes or aliases — used by mutation tracking (§4.3) where the
// receiver's content sub-records are meant to survive.
func (v *VariableRecord) Assign(line int) {
	v.advance(line)
}

// Reassign performs a full bare-name reassignment (spec §3 Lifecycles):
// it advances active_def/previous_def and clears elements, attributes and
// aliases, without replacing the record itself.
func (v *VariableRecord) Reassign(line int, typeTag string) {
	v.advance(line)
	v.TypeTag = typeTag
	v.Elements = nil
	v.Attributes = nil
	v.Aliases = nil
}

// Element returns the element record for a normalized index key, creating
// one on first write (spec §3 Lifecycles).
func (v *VariableRecord) Element(key string, line int) *ElementRecord {
	if v.Elements == nil {
		v.Elements = map[string]*ElementRecord{}
	}
	if e, ok := v.Elements[key]; ok {
		e.advance(line)
		return e
	}
	e := newElementRecord(line)
	v.Elements[key] = e
	return e
}

// Attribute returns the attribute record for a name, creating one on first
// write (spec §3 Lifecycles).
func (v *VariableRecord) Attribute(name string, line int) *AttributeRecord {
	if v.Attributes == nil {
		v.Attributes = map[string]*AttributeRecord{}
	}
	if a, ok := v.Attributes[name]; ok {
		a.advance(line)
		return a
	}
	a := newAttributeRecord(line)
	v.Attributes[name] = a
	return a
}

// AddAlias establishes a symmetric alias link to peer, deduplicated.
func (v *VariableRecord) AddAlias(peer string) {
	for _, p := range v.Aliases {
		if p == peer {
			return
		}
	}
	v.Aliases = append(v.Aliases, peer)
}

// IsImmutableType reports whether typeTag names one of the immutable types
// that never participate in aliasing (spec §4.3).
func IsImmutableType(typeTag string) bool {
	return Immutable[typeTag]
}
