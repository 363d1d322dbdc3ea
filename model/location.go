package model

import "fmt"

// Location is the position of a syntax-tree node, as produced by the
// syntax facade. Lines and columns are 1-based.
type Location struct {
	Path        string `yaml:"path,omitempty"`
	StartLine   int    `yaml:"startLine"`
	StartColumn int    `yaml:"startColumn"`
	EndLine     int    `yaml:"endLine"`
	EndColumn   int    `yaml:"endColumn"`
}

// String renders a compact "path:line:col" form, handy in error messages.
func (l Location) String() string {
	if l.Path == "" {
		return fmt.Sprintf("%d:%d", l.StartLine, l.StartColumn)
	}
	return fmt.Sprintf("%s:%d:%d", l.Path, l.StartLine, l.StartColumn)
}

// SameStart reports whether two locations begin at the same line and column,
// used by the attribute-read disambiguation heuristic (spec §4.6).
func (l Location) SameStart(other Location) bool {
	return l.StartLine == other.StartLine && l.StartColumn == other.StartColumn
}
