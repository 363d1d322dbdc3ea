package engine

import "github.com/viant/dynslice/model"

// Result is the outcome of a completed slicing session (spec §4.7): the
// resolved criterion line and the keep-set computed from it.
type Result struct {
	Criterion int
	Keep      map[int]bool
}

// KeepFunc adapts Result for syntax.Rewriter.Rewrite, which asks a yes/no
// question per line rather than taking a set.
func (r *Result) KeepFunc() func(line int) bool {
	return func(line int) bool { return r.Keep[line] }
}

// Slice computes the backward-reachability keep-set rooted at criterion
// (spec §4.7): an iterative worklist walk over the dependence graph, guarded
// by each line's monotonic Visited flag so cycles (self-dependence from
// augmented writes, aliasing loops) terminate. A line with no recorded
// dependency set is still kept — it is reachable, just leaf-like.
func Slice(graph *model.DependenceGraph, criterion int) map[int]bool {
	keep := map[int]bool{}
	stack := []int{criterion}
	for len(stack) > 0 {
		line := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if graph.Visited(line) {
			keep[line] = true
			continue
		}
		graph.MarkVisited(line)
		keep[line] = true
		for _, dep := range graph.Dependencies(line) {
			if !graph.Visited(dep) {
				stack = append(stack, dep)
			} else {
				keep[dep] = true
			}
		}
	}
	return keep
}
