package engine

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// dumpView is the serializable snapshot of a Session's live state, used for
// debugging and by the CLI's -dump flag. Grounded on linage.DataPoint/Identity's
// plain yaml struct tags (analyzer/linage/datapoint.go, identity.go).
type dumpView struct {
	Target    string        `yaml:"target"`
	Criterion int           `yaml:"criterion,omitempty"`
	Keep      []int         `yaml:"keep,omitempty"`
	Lines     map[int][]int `yaml:"dependencies,omitempty"`
}

// DumpYAML renders the session's current dependence graph (and, once
// computed, the slice result) as YAML.
func (s *Session) DumpYAML(result *Result) ([]byte, error) {
	view := dumpView{
		Target: s.config.TargetFunction,
		Lines:  map[int][]int{},
	}
	for _, line := range s.graph.Lines() {
		view.Lines[line] = s.graph.Dependencies(line)
	}
	if result != nil {
		view.Criterion = result.Criterion
		for line := range result.Keep {
			view.Keep = append(view.Keep, line)
		}
		sort.Ints(view.Keep)
	}
	return yaml.Marshal(view)
}
