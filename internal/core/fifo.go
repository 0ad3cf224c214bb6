package core

// Queue is an unbounded FIFO backed by a slice.
type Queue[T any] struct {
	items []T
	head  int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{items: make([]T, 0)}
}

// Enqueue adds an item to the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes the front item. ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (item T, ok bool) {
	if q.IsEmpty() {
		return item, false
	}
	var zero T
	item = q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item, true
}

func (q *Queue[T]) Peek() (item T, ok bool) {
	if q.IsEmpty() {
		return item, false
	}
	return q.items[q.head], true
}

func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }
func (q *Queue[T]) Len() int      { return len(q.items) - q.head }
