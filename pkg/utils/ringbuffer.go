package utils

import "sync"

// RingBuffer is a fixed-capacity circular buffer. Once full, each push
// evicts the oldest item. Safe for concurrent use.
type RingBuffer[T any] struct {
	items []T
	head  int
	full  bool
	mu    sync.RWMutex
}

// NewRingBuffer allocates a ring buffer holding up to capacity items.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &RingBuffer[T]{
		items: make([]T, capacity),
	}
}

// Push appends an item, evicting the oldest when the buffer is full.
func (r *RingBuffer[T]) Push(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[r.head] = value
	r.head = (r.head + 1) % len(r.items)
	if r.head == 0 {
		r.full = true
	}
}

// Len returns the number of stored items.
func (r *RingBuffer[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.length()
}

// Cap returns the buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.items)
}

// At returns the item at index i, where 0 is the oldest stored item.
func (r *RingBuffer[T]) At(i int) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	if i < 0 || i >= r.length() {
		return zero, false
	}
	return r.items[(r.oldest()+i)%len(r.items)], true
}

// Last returns the most recently pushed item, if any.
func (r *RingBuffer[T]) Last() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	n := r.length()
	if n == 0 {
		return zero, false
	}
	return r.items[(r.oldest()+n-1)%len(r.items)], true
}

// Values returns the stored items ordered oldest to newest.
func (r *RingBuffer[T]) Values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := r.length()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = r.items[(r.oldest()+i)%len(r.items)]
	}
	return out
}

// length and oldest assume the lock is held.
func (r *RingBuffer[T]) length() int {
	if r.full {
		return len(r.items)
	}
	return r.head
}

func (r *RingBuffer[T]) oldest() int {
	if r.full {
		return r.head
	}
	return 0
}
