package heapx

import (
	"container/heap"
	"slices"

	"github.com/ecodeclub/ekit"
)

// PriorityQueue 二叉堆实现的优先队列，compare 返回负数的元素先出队。
// 非并发安全，由调用方加锁。
type PriorityQueue[T any] struct {
	h *innerHeap[T]
}

func NewPriorityQueue[T any](compare ekit.Comparator[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: &innerHeap[T]{compare: compare}}
}

func (q *PriorityQueue[T]) Push(t T) {
	heap.Push(q.h, t)
}

// Pop 队列为空时第二个返回值为 false
func (q *PriorityQueue[T]) Pop() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return heap.Pop(q.h).(T), true
}

func (q *PriorityQueue[T]) Peek() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.h.items[0], true
}

func (q *PriorityQueue[T]) IsEmpty() bool {
	return q.Len() == 0
}

func (q *PriorityQueue[T]) Len() int {
	return len(q.h.items)
}

// Sorted 返回全部元素的有序副本，不修改队列
func (q *PriorityQueue[T]) Sorted() []T {
	res := slices.Clone(q.h.items)
	slices.SortStableFunc(res, q.h.compare)
	return res
}

// RemoveFunc 删除第一个满足 match 的元素，O(n)
func (q *PriorityQueue[T]) RemoveFunc(match func(T) bool) (T, bool) {
	for i, item := range q.h.items {
		if match(item) {
			heap.Remove(q.h, i)
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Rebuild 用 fn 的结果整体重建队列。
// 批量修改排序键时不能原地改堆，只能先取有序快照再重新入队。
func (q *PriorityQueue[T]) Rebuild(fn func(sorted []T) []T) {
	items := fn(q.Sorted())
	q.h.items = q.h.items[:0]
	for _, item := range items {
		heap.Push(q.h, item)
	}
}

type innerHeap[T any] struct {
	items   []T
	compare ekit.Comparator[T]
}

func (h *innerHeap[T]) Len() int { return len(h.items) }

func (h *innerHeap[T]) Less(i, j int) bool {
	return h.compare(h.items[i], h.items[j]) < 0
}

func (h *innerHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *innerHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *innerHeap[T]) Pop() any {
	n := len(h.items)
	item := h.items[n-1]
	var zero T
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	return item
}
