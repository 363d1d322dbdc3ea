package engine

import (
	"github.com/viant/dynslice/model"
	"github.com/viant/dynslice/syntax"
)

// Config holds the session's instrumentation-facing parameters (spec §9
// Config Surface: target function, criterion marker, self-reference name,
// and the sibling-file extensions used by the CLI).
type Config struct {
	TargetFunction  string
	CriterionMarker string
	SelfName        string
	OriginalExt     string
	ScriptExt       string
}

func defaultConfig() Config {
	return Config{
		TargetFunction:  "slice_me",
		CriterionMarker: "slicing criterion",
		SelfName:        "self",
		OriginalExt:     ".orig",
		ScriptExt:       ".py",
	}
}

// Option configures a Session, mirroring Analyzer.Option's functional-options
// shape (analyzer/option.go) generalized from "which grammar/which plugins"
// to "which target function/criterion marker".
type Option func(*Session)

// WithTargetFunction names the function whose body is instrumented and
// sliced (spec §4.1).
func WithTargetFunction(name string) Option {
	return func(s *Session) { s.config.TargetFunction = name }
}

// WithCriterionMarker sets the comment substring identifying the slicing
// criterion line (spec §4.1 "Criterion finder").
func WithCriterionMarker(marker string) Option {
	return func(s *Session) { s.config.CriterionMarker = marker }
}

// WithSelfName overrides the conventional receiver name used to suppress
// self-targeted writes (spec §4.6). Defaults to "self".
func WithSelfName(name string) Option {
	return func(s *Session) { s.config.SelfName = name }
}

// WithExtensions overrides the original/sliced sibling-file extensions used
// by the CLI driver (spec §6.3). Defaults to ".orig"/".py".
func WithExtensions(original, script string) Option {
	return func(s *Session) { s.config.OriginalExt, s.config.ScriptExt = original, script }
}

// Session is the live, single-execution slicing engine: it owns the
// definition table, dependence graph and control-flow stack, and is driven
// by the nine instrumentation hooks of spec §6.1. One Session serves exactly
// one observed execution (spec §9: tables are never shared across runs).
type Session struct {
	facade *syntax.Facade
	target *syntax.TargetFunction
	config Config

	table *model.DefinitionTable
	graph *model.DependenceGraph
	stack *model.ControlStack

	gateOpen bool
}

// NewSession resolves the configured target function against facade and
// returns a Session ready to receive hook calls. It fails only if the
// target function cannot be located; malformed programs beyond that are the
// instrumentation runtime's concern, not this engine's (spec §1 Non-goals).
func NewSession(facade *syntax.Facade, opts ...Option) (*Session, error) {
	s := &Session{
		facade: facade,
		config: defaultConfig(),
		table:  model.NewDefinitionTable(),
		graph:  model.NewDependenceGraph(),
		stack:  model.NewControlStack(),
	}
	for _, opt := range opts {
		opt(s)
	}
	target, ok := syntax.FindFunction(facade, s.config.TargetFunction)
	if !ok {
		return nil, &FatalError{Reason: "target function not found: " + s.config.TargetFunction}
	}
	s.target = target
	return s, nil
}

// Config returns the session's resolved configuration.
func (s *Session) Config() Config { return s.config }

// Target returns the resolved target function.
func (s *Session) Target() *syntax.TargetFunction { return s.target }

// Table exposes the live definition table, mainly for tests.
func (s *Session) Table() *model.DefinitionTable { return s.table }

// Graph exposes the live dependence graph, mainly for tests and DumpYAML.
func (s *Session) Graph() *model.DependenceGraph { return s.graph }

// inScope reports whether iid's source location should update engine state:
// the activation gate must be open, and the location must fall inside the
// target function's body interval (spec §4.1).
func (s *Session) inScope(iid int) (line int, ok bool) {
	if !s.gateOpen {
		return 0, false
	}
	loc, found := s.facade.Location(iid)
	if !found {
		return 0, false
	}
	if !s.target.Contains(loc.StartLine) {
		return 0, false
	}
	return loc.StartLine, true
}

// baseDeps seeds a dependency set from every frame currently on the
// control-flow stack (spec §2 item 4: "every recorded line also depends on
// the header line of each enclosing scope"), applied uniformly to every
// hook, not only reads.
func (s *Session) baseDeps() map[int]struct{} {
	return s.stack.HeaderLines()
}
