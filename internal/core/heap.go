package core

import "container/heap"

// MinHeap is a binary min-heap ordered by a caller supplied comparator.
// compare returns a negative number when a sorts before b. Ties are left
// entirely to the comparator.
type MinHeap[T any] struct {
	items heapItems[T]
}

// NewMinHeap creates an empty heap ordered by compare.
func NewMinHeap[T any](compare func(a, b T) int) *MinHeap[T] {
	h := &MinHeap[T]{
		items: heapItems[T]{
			data:    make([]T, 0),
			compare: compare,
		},
	}
	heap.Init(&h.items)
	return h
}

// Push adds an item to the heap
func (h *MinHeap[T]) Push(item T) {
	heap.Push(&h.items, item)
}

// Pop removes and returns the minimum item. ok is false on an empty heap.
func (h *MinHeap[T]) Pop() (item T, ok bool) {
	if h.IsEmpty() {
		return item, false
	}
	return heap.Pop(&h.items).(T), true
}

// Peek returns the minimum item without removing it
func (h *MinHeap[T]) Peek() (item T, ok bool) {
	if h.IsEmpty() {
		return item, false
	}
	return h.items.data[0], true
}

func (h *MinHeap[T]) IsEmpty() bool {
	return h.items.Len() == 0
}

func (h *MinHeap[T]) Len() int {
	return h.items.Len()
}

// heapItems implements heap.Interface
type heapItems[T any] struct {
	data    []T
	compare func(a, b T) int
}

func (h heapItems[T]) Len() int           { return len(h.data) }
func (h heapItems[T]) Less(i, j int) bool { return h.compare(h.data[i], h.data[j]) < 0 }
func (h heapItems[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

func (h *heapItems[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

func (h *heapItems[T]) Pop() any {
	old := h.data
	n := len(old)
	x := old[n-1]
	var zero T
	old[n-1] = zero
	h.data = old[0 : n-1]
	return x
}
