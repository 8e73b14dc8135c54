// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package boundedheap provides a fixed capacity, array backed, max-heap
// priority queue. The ordering of elements is either the natural ordering
// of the element type or is provided by a comparison function supplied
// when the heap is created.
//
// A Heap is not safe for concurrent use; callers that share a Heap across
// goroutines must serialize access to it.
package boundedheap

import (
	"cmp"
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrQueueFull is returned by Insert when the heap holds Cap() elements.
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueEmpty is returned by Remove and Peek when the heap is empty.
	ErrQueueEmpty = errors.New("queue is empty")
	// ErrInvalidCapacity is returned when a negative capacity is requested.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrNotComparable is returned by NewFunc when no comparison function
	// is supplied.
	ErrNotComparable = errors.New("no ordering available for element type")
)

// Heap represents a bounded max-heap. Note that this uses a dummy root
// node, ie. storage[0] is always empty, so that the parent of the
// element at i is at i/2 and its children are at 2i and 2i+1.
type Heap[T any] struct {
	storage []T
	count   int
	compare func(a, b T) int
}

// New creates a new instance of Heap that uses the natural ordering of T.
func New[T cmp.Ordered](opts ...Option) (*Heap[T], error) {
	return newHeap(cmp.Compare[T], opts)
}

// NewFunc creates a new instance of Heap that uses the supplied function
// to order its elements. compare must return a negative number when a
// has lower priority than b, a positive number when a has higher
// priority and zero otherwise.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) (*Heap[T], error) {
	if compare == nil {
		return nil, ErrNotComparable
	}
	return newHeap(compare, opts)
}

// MustNew is like New but panics on error.
func MustNew[T cmp.Ordered](opts ...Option) *Heap[T] {
	h, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// MustNewFunc is like NewFunc but panics on error.
func MustNewFunc[T any](compare func(a, b T) int, opts ...Option) *Heap[T] {
	h, err := NewFunc(compare, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

func newHeap[T any](compare func(a, b T) int, opts []Option) (*Heap[T], error) {
	o := options{capacity: DefaultCapacity}
	for _, fn := range opts {
		fn(&o)
	}
	if o.capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, o.capacity)
	}
	return &Heap[T]{
		storage: make([]T, o.capacity+1),
		compare: compare,
	}, nil
}

// Len returns the number of elements stored in the heap.
func (h *Heap[T]) Len() int {
	return h.count
}

// Cap returns the maximum number of elements the heap can hold.
func (h *Heap[T]) Cap() int {
	return len(h.storage) - 1
}

// IsEmpty returns true if the heap contains no elements.
func (h *Heap[T]) IsEmpty() bool {
	return h.count == 0
}

// IsFull returns true if the heap contains Cap() elements.
func (h *Heap[T]) IsFull() bool {
	return h.count == h.Cap()
}

// Insert adds v to the heap. It returns ErrQueueFull, and leaves the
// heap unchanged, if the heap is full.
func (h *Heap[T]) Insert(v T) error {
	if h.IsFull() {
		return ErrQueueFull
	}
	h.count++
	h.storage[h.count] = v
	h.swim(h.count)
	return nil
}

// Remove removes and returns the highest priority element. It returns
// ErrQueueEmpty if the heap is empty.
func (h *Heap[T]) Remove() (T, error) {
	var zero T
	if h.IsEmpty() {
		return zero, ErrQueueEmpty
	}
	top := h.storage[1]
	h.swap(1, h.count)
	h.storage[h.count] = zero // don't retain a reference to the removed element.
	h.count--
	h.sink(1)
	return top, nil
}

// Peek returns the highest priority element without removing it. It
// returns ErrQueueEmpty if the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrQueueEmpty
	}
	return h.storage[1], nil
}

// Drain removes all of the elements in the heap and returns them in
// priority order, highest first.
func (h *Heap[T]) Drain() []T {
	out := make([]T, 0, h.count)
	for !h.IsEmpty() {
		v, _ := h.Remove()
		out = append(out, v)
	}
	return out
}

func (h *Heap[T]) swim(i int) {
	for i > 1 && h.less(i/2, i) {
		h.swap(i/2, i)
		i /= 2
	}
}

func (h *Heap[T]) sink(i int) {
	for 2*i <= h.count {
		j := 2 * i
		// Prefer the right child when the two are equal.
		if j < h.count && !h.less(j+1, j) {
			j++
		}
		if !h.less(i, j) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

func (h *Heap[T]) less(i, j int) bool {
	return h.compare(h.storage[i], h.storage[j]) < 0
}

func (h *Heap[T]) swap(i, j int) {
	h.storage[i], h.storage[j] = h.storage[j], h.storage[i]
}
