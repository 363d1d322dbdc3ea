package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlStack_PushDedupByIID(t *testing.T) {
	s := NewControlStack()
	s.Push(3, 10)
	s.Push(3, 10) // loop header revisited on a second iteration
	assert.Equal(t, 1, s.Depth())
}

func TestControlStack_PopThroughIsInclusive(t *testing.T) {
	s := NewControlStack()
	s.Push(2, 1)
	s.Push(3, 2)
	s.Push(4, 3)

	s.PopThrough(2)
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, map[int]struct{}{2: {}}, s.HeaderLines())
}

func TestControlStack_PopThroughUnknownIIDIsNoop(t *testing.T) {
	s := NewControlStack()
	s.Push(2, 1)
	s.PopThrough(99)
	assert.Equal(t, 1, s.Depth())
}

func TestControlStack_HeaderLinesEmptyWhenEmpty(t *testing.T) {
	s := NewControlStack()
	assert.True(t, s.Empty())
	assert.Empty(t, s.HeaderLines())
}
