package core

// RingBuffer is a fixed capacity FIFO. It never grows: Enqueue on a full
// buffer fails and leaves the contents untouched.
type RingBuffer[T any] struct {
	items []T
	front int
	count int
}

func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &RingBuffer[T]{items: make([]T, capacity)}
}

// Enqueue appends item at the rear. It returns false when the buffer is full.
func (r *RingBuffer[T]) Enqueue(item T) bool {
	if r.IsFull() {
		return false
	}
	rear := (r.front + r.count) % len(r.items)
	r.items[rear] = item
	r.count++
	return true
}

// Dequeue removes and returns the front item. ok is false when empty.
func (r *RingBuffer[T]) Dequeue() (item T, ok bool) {
	if r.IsEmpty() {
		return item, false
	}
	var zero T
	item = r.items[r.front]
	r.items[r.front] = zero
	r.front = (r.front + 1) % len(r.items)
	r.count--
	return item, true
}

func (r *RingBuffer[T]) Peek() (item T, ok bool) {
	if r.IsEmpty() {
		return item, false
	}
	return r.items[r.front], true
}

func (r *RingBuffer[T]) IsEmpty() bool { return r.count == 0 }
func (r *RingBuffer[T]) IsFull() bool  { return r.count == len(r.items) }
func (r *RingBuffer[T]) Len() int      { return r.count }
func (r *RingBuffer[T]) Cap() int      { return len(r.items) }
