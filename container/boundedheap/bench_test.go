// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package boundedheap_test

import (
	stdheap "container/heap"
	"math/rand"
	"testing"

	"cloudeng.io/pqueue/container/boundedheap"
)

type maxSlice []int

func (h maxSlice) Len() int           { return len(h) }
func (h maxSlice) Less(i, j int) bool { return h[i] > h[j] }
func (h maxSlice) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxSlice) Push(v any) {
	*h = append(*h, v.(int))
}

func (h *maxSlice) Pop() (v any) {
	old := *h
	n := len(old)
	v = old[n-1]
	*h = old[:n-1]
	return
}

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

const benchmarkSize = 4096

func BenchmarkBounded(b *testing.B) {
	data := uniformRand(1, benchmarkSize)
	h := boundedheap.MustNew[int](boundedheap.WithCapacity(benchmarkSize))
	b.ResetTimer()
	for range b.N {
		for _, v := range data {
			_ = h.Insert(v)
		}
		for !h.IsEmpty() {
			_, _ = h.Remove()
		}
	}
}

func BenchmarkBoundedFunc(b *testing.B) {
	data := uniformRand(1, benchmarkSize)
	h := boundedheap.MustNewFunc(func(a, b int) int { return a - b }, boundedheap.WithCapacity(benchmarkSize))
	b.ResetTimer()
	for range b.N {
		for _, v := range data {
			_ = h.Insert(v)
		}
		for !h.IsEmpty() {
			_, _ = h.Remove()
		}
	}
}

func BenchmarkStdlib(b *testing.B) {
	data := uniformRand(1, benchmarkSize)
	h := make(maxSlice, 0, benchmarkSize)
	b.ResetTimer()
	for range b.N {
		for _, v := range data {
			stdheap.Push(&h, v)
		}
		for h.Len() > 0 {
			stdheap.Pop(&h)
		}
	}
}
