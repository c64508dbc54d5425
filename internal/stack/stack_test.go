package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vancomm/minesweeper/internal/stack"
)

func TestEmpty(t *testing.T) {
	s := stack.New[int](4)

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())

	_, ok := s.Pop()
	assert.False(t, ok)

	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestPushPop(t *testing.T) {
	s := stack.New[int](2)
	for i := 1; i < 10; i++ {
		s.Push(i)
	}

	assert.False(t, s.IsEmpty())
	assert.Equal(t, 9, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 9, top)

	for i := 9; i > 0; i-- {
		v, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.True(t, s.IsEmpty())
}

func TestReuseAfterDrain(t *testing.T) {
	s := stack.New[string](0)
	s.Push("a")
	s.Push("b")
	s.Pop()
	s.Push("c")

	v, _ := s.Pop()
	assert.Equal(t, "c", v)
	v, _ = s.Pop()
	assert.Equal(t, "a", v)
	assert.True(t, s.IsEmpty())
}
