package stackx

import (
	"github.com/ecodeclub/ekit/list"
)

const DefaultCapacity = 10

// Bounded 有容量上限的栈，超出容量时淘汰最早入栈的元素。非并发安全。
type Bounded[T any] struct {
	capacity int
	items    *list.LinkedList[T]
}

func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bounded[T]{
		capacity: capacity,
		items:    list.NewLinkedList[T](),
	}
}

// Push 满了先淘汰栈底
func (s *Bounded[T]) Push(t T) {
	for s.items.Len() >= s.capacity {
		_, _ = s.items.Delete(0)
	}
	_ = s.items.Append(t)
}

// Pop 栈为空时第二个返回值为 false
func (s *Bounded[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	t, err := s.items.Delete(s.items.Len() - 1)
	return t, err == nil
}

func (s *Bounded[T]) Peek() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	t, err := s.items.Get(s.items.Len() - 1)
	return t, err == nil
}

func (s *Bounded[T]) IsEmpty() bool {
	return s.items.Len() == 0
}

func (s *Bounded[T]) Len() int {
	return s.items.Len()
}

func (s *Bounded[T]) Cap() int {
	return s.capacity
}
