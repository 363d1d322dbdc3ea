package engine

import "github.com/viant/dynslice/model"

// recordMutation implements spec §4.3's "Mutating method calls and method
// binding" rule: it advances both the receiver and every one of its current
// alias peers, then records a dependency set for L consisting of L itself
// (the self-loop created by the just-advanced active_def), the specific
// AttributeRecord's active_def if attr is itself a tracked attribute of the
// receiver, and the previous_def of the receiver and every alias peer — so
// that an aliased mutation's effect is traceable back through whichever
// name first established the alias.
func (s *Session) recordMutation(line int, name, attr string, v *model.VariableRecord) error {
	peers := append([]string{}, v.Aliases...)
	s.table.AdvanceWithAliases(name, line)

	deps := s.baseDeps()
	deps[line] = struct{}{}
	if a, ok := v.Attributes[attr]; ok {
		deps[a.ActiveDef] = struct{}{}
	}
	if v.HasPrevious() {
		deps[v.PreviousDef] = struct{}{}
	}
	for _, peer := range peers {
		if p := s.table.Lookup(peer); p != nil && p.HasPrevious() {
			deps[p.PreviousDef] = struct{}{}
		}
	}
	s.graph.Record(line, deps)
	return nil
}
