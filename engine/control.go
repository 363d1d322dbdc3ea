package engine

import "github.com/viant/dynslice/syntax"

// OnFunctionEnter opens the activation gate once execution enters the
// configured target function; the gate then stays open for the rest of the
// run (spec §4.1). Entry into any other function, or a lambda, is ignored:
// this engine has no interprocedural model (spec §1 Non-goals).
func (s *Session) OnFunctionEnter(ev FunctionEnterEvent) error {
	if ev.IsLambda {
		return nil
	}
	if ev.Name == s.config.TargetFunction {
		s.gateOpen = true
	}
	return nil
}

// OnEnterIf, OnEnterFor and OnEnterWhile push a control-flow frame headed at
// the construct's own line (spec §4.4). Re-entry into an already-active
// frame (e.g. a loop header revisited on each iteration) is a push no-op,
// handled by model.ControlStack.Push's iid dedup.
func (s *Session) OnEnterIf(ev ControlEvent) error    { return s.pushFrame(ev.IID) }
func (s *Session) OnEnterFor(ev ControlEvent) error   { return s.pushFrame(ev.IID) }
func (s *Session) OnEnterWhile(ev ControlEvent) error { return s.pushFrame(ev.IID) }

// OnExitIf, OnExitFor and OnExitWhile pop every frame from the top of the
// stack down to and including the matching construct's frame (spec §4.4),
// so an abnormal exit (break/return) unwinds every frame it passes through.
func (s *Session) OnExitIf(ev ControlEvent) error    { return s.popFrame(ev.IID) }
func (s *Session) OnExitFor(ev ControlEvent) error   { return s.popFrame(ev.IID) }
func (s *Session) OnExitWhile(ev ControlEvent) error { return s.popFrame(ev.IID) }

func (s *Session) pushFrame(iid int) error {
	line, ok := s.inScope(iid)
	if !ok {
		return nil
	}
	s.stack.Push(line, iid)
	return nil
}

func (s *Session) popFrame(iid int) error {
	if !s.gateOpen {
		return nil
	}
	s.stack.PopThrough(iid)
	return nil
}

// OnEndExecution finalizes the session: it runs the backward-reachability
// slice solver rooted at the criterion line and returns the computed
// keep-set (spec §4.7, §6.1 on_end_execution).
func (s *Session) OnEndExecution() (*Result, error) {
	criterion, ok := syntax.FindCriterion(s.facade, s.config.CriterionMarker)
	if !ok {
		return nil, &FatalError{Reason: "slicing criterion not found: " + s.config.CriterionMarker}
	}
	keep := Slice(s.graph, criterion)
	return &Result{Criterion: criterion, Keep: keep}, nil
}
