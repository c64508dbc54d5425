package stack

// Stack is a LIFO work-list. top is the index of the next free slot, so the
// stack is empty exactly when top == 0.
type Stack[T any] struct {
	elems []T
	top   int
}

func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		elems: make([]T, 0, max(capacity, 0)),
	}
}

func (s Stack[T]) Len() int {
	return s.top
}

func (s Stack[T]) IsEmpty() bool {
	return s.top == 0
}

func (s *Stack[T]) Push(elem T) {
	if s.top < len(s.elems) {
		s.elems[s.top] = elem
	} else {
		s.elems = append(s.elems, elem)
	}
	s.top++
}

// Pop removes and returns the top element. ok is false on an empty stack.
func (s *Stack[T]) Pop() (elem T, ok bool) {
	if s.top == 0 {
		return elem, false
	}
	s.top--
	elem = s.elems[s.top]
	var zero T
	s.elems[s.top] = zero
	return elem, true
}

func (s Stack[T]) Peek() (elem T, ok bool) {
	if s.top == 0 {
		return elem, false
	}
	return s.elems[s.top-1], true
}
