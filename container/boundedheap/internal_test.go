// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package boundedheap

import (
	"bytes"
	"reflect"
	"testing"
)

func (h *Heap[T]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 1)
	for i := h.count + 1; i < len(h.storage); i++ {
		if !h.isZero(i) {
			t.Errorf("heap retains a value at unused slot %v: %v", i, h.storage[i])
		}
	}
}

func (h *Heap[T]) verify(t *testing.T, p int) {
	t.Helper()
	l, r := 2*p, 2*p+1
	if l <= h.count {
		if h.less(p, l) {
			t.Errorf("heap inconsistent: left sub tree for %v (%v < [%v]: %v)", p, h.storage[p], l, h.storage[l])
			return
		}
		h.verify(t, l)
	}
	if r <= h.count {
		if h.less(p, r) {
			t.Errorf("heap inconsistent: right sub tree for %v (%v < [%v]: %v)", p, h.storage[p], r, h.storage[r])
			return
		}
		h.verify(t, r)
	}
}

func (h *Heap[T]) isZero(i int) bool {
	return reflect.ValueOf(&h.storage[i]).Elem().IsZero()
}

func TestSinkPrefersRightChild(t *testing.T) {
	type item struct {
		pri  int
		name string
	}
	h := MustNewFunc(func(a, b item) int { return a.pri - b.pri }, WithCapacity(4))
	// Laid out directly so that the root has two equal children.
	h.storage = []item{{}, {9, "root"}, {5, "left"}, {5, "right"}, {1, "last"}}
	h.count = 4
	h.Verify(t)
	if _, err := h.Remove(); err != nil {
		t.Fatal(err)
	}
	h.Verify(t)
	if got, want := h.storage[1].name, "right"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.storage[3].name, "last"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStorageLayout(t *testing.T) {
	h := MustNew[int](WithCapacity(3))
	if got, want := len(h.storage), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, v := range []int{1, 2, 3} {
		if err := h.Insert(v); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := h.storage[1], 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.storage[0], 0; got != want {
		t.Errorf("dummy root: got %v, want %v", got, want)
	}
}

func TestSliceElements(t *testing.T) {
	h := MustNewFunc(bytes.Compare, WithCapacity(4))
	for _, v := range []string{"b", "d", "a", "c"} {
		if err := h.Insert([]byte(v)); err != nil {
			t.Fatal(err)
		}
		h.Verify(t)
	}
	for _, want := range []string{"d", "c"} {
		v, err := h.Remove()
		if err != nil {
			t.Fatal(err)
		}
		if got := string(v); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		h.Verify(t)
	}
	for i := h.Len() + 1; i < len(h.storage); i++ {
		if h.storage[i] != nil {
			t.Errorf("slot %v: got %q, want nil", i, h.storage[i])
		}
	}

	type tagged struct {
		pri  int
		tags []string
	}
	th := MustNewFunc(func(a, b tagged) int { return a.pri - b.pri }, WithCapacity(2))
	if err := th.Insert(tagged{1, []string{"x"}}); err != nil {
		t.Fatal(err)
	}
	if err := th.Insert(tagged{2, nil}); err != nil {
		t.Fatal(err)
	}
	if _, err := th.Remove(); err != nil {
		t.Fatal(err)
	}
	th.Verify(t)
}
