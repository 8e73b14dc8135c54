// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package boundedheap

// DefaultCapacity is the number of elements a heap can hold when
// WithCapacity is not specified.
const DefaultCapacity = 10

type options struct {
	capacity int
}

// Option represents the options that can be passed to New and NewFunc.
type Option func(*options)

// WithCapacity sets the maximum number of elements that the heap may
// hold. The capacity is fixed for the lifetime of the heap and a negative
// value will cause New and NewFunc to return ErrInvalidCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
