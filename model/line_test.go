package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependenceGraph_RecordMergesAndDedups(t *testing.T) {
	g := NewDependenceGraph()
	g.Record(5, map[int]struct{}{2: {}, 3: {}})
	g.Record(5, map[int]struct{}{3: {}, 4: {}})

	assert.Equal(t, []int{2, 3, 4}, g.Dependencies(5))
}

func TestDependenceGraph_RecordEmptyIsNoop(t *testing.T) {
	g := NewDependenceGraph()
	g.Record(5, map[int]struct{}{})
	assert.Nil(t, g.Lookup(5))
}

func TestDependenceGraph_DependenciesOfUnknownLineIsNil(t *testing.T) {
	g := NewDependenceGraph()
	assert.Nil(t, g.Dependencies(99))
}

func TestDependenceGraph_VisitedIsMonotonic(t *testing.T) {
	g := NewDependenceGraph()
	assert.False(t, g.Visited(5))

	g.MarkVisited(5)
	assert.True(t, g.Visited(5))

	// marking again is a no-op, never clears.
	g.MarkVisited(5)
	assert.True(t, g.Visited(5))
}

func TestDependenceGraph_MarkVisitedCreatesRecord(t *testing.T) {
	g := NewDependenceGraph()
	g.MarkVisited(7)
	assert.NotNil(t, g.Lookup(7))
	assert.Empty(t, g.Dependencies(7))
}

func TestDependenceGraph_Lines(t *testing.T) {
	g := NewDependenceGraph()
	g.Record(5, map[int]struct{}{2: {}})
	g.Record(3, map[int]struct{}{1: {}})
	g.MarkVisited(9)

	assert.Equal(t, []int{3, 5, 9}, g.Lines())
}
