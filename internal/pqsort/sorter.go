// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pqsort orders lines of text by priority using a bounded heap.
// Lines are compared either lexically or, optionally, by their numeric
// value and the number of lines that can be ordered is limited by the
// configured capacity.
package pqsort

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue/container/boundedheap"
)

// ErrNotANumber is returned for numeric input lines that parse as NaN.
var ErrNotANumber = errors.New("not a number")

// Sorter orders lines according to a Config.
type Sorter struct {
	cfg Config
}

// NewSorter returns a new Sorter for the supplied configuration.
func NewSorter(cfg Config) (*Sorter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sorter{cfg: cfg}, nil
}

type entry[K cmp.Ordered] struct {
	key    K
	line   string
	lineNo int
}

// Sort returns the supplied lines in priority order, highest first unless
// the configuration requests reverse order, truncated to the configured
// limit. An error wrapping boundedheap.ErrQueueFull is returned if there
// are more lines than the configured capacity.
func (s *Sorter) Sort(ctx context.Context, lines []string) ([]string, error) {
	if s.cfg.Numeric {
		entries, err := numericEntries(lines)
		if err != nil {
			return nil, err
		}
		return drain(ctx, s.cfg, entries)
	}
	return drain(ctx, s.cfg, stringEntries(lines))
}

// Top returns the highest priority line. It returns an error wrapping
// boundedheap.ErrQueueEmpty if there are no lines.
func (s *Sorter) Top(ctx context.Context, lines []string) (string, error) {
	if s.cfg.Numeric {
		entries, err := numericEntries(lines)
		if err != nil {
			return "", err
		}
		return top(ctx, s.cfg, entries)
	}
	return top(ctx, s.cfg, stringEntries(lines))
}

func stringEntries(lines []string) []entry[string] {
	entries := make([]entry[string], len(lines))
	for i, l := range lines {
		entries[i] = entry[string]{key: l, line: l, lineNo: i + 1}
	}
	return entries
}

func numericEntries(lines []string) ([]entry[float64], error) {
	var errs errors.M
	entries := make([]entry[float64], len(lines))
	for i, l := range lines {
		v, err := strconv.ParseFloat(strings.TrimSpace(l), 64)
		if err != nil {
			errs.Append(lineError(i+1, err))
			continue
		}
		if math.IsNaN(v) {
			errs.Append(lineError(i+1, fmt.Errorf("%q: %w", l, ErrNotANumber)))
			continue
		}
		entries[i] = entry[float64]{key: v, line: l, lineNo: i + 1}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func lineError(lineNo int, err error) error {
	return errors.Annotate(fmt.Sprintf("line %d", lineNo), err)
}

func build[K cmp.Ordered](ctx context.Context, cfg Config, entries []entry[K]) (*boundedheap.Heap[entry[K]], error) {
	compare := func(a, b entry[K]) int { return cmp.Compare(a.key, b.key) }
	if cfg.Reverse {
		compare = func(a, b entry[K]) int { return cmp.Compare(b.key, a.key) }
	}
	h, err := boundedheap.NewFunc(compare, boundedheap.WithCapacity(cfg.Capacity))
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := h.Insert(e); err != nil {
			return nil, lineError(e.lineNo, err)
		}
	}
	ctxlog.Logger(ctx).Debug("heap built", "len", h.Len(), "cap", h.Cap(), "reverse", cfg.Reverse, "numeric", cfg.Numeric)
	return h, nil
}

func drain[K cmp.Ordered](ctx context.Context, cfg Config, entries []entry[K]) ([]string, error) {
	h, err := build(ctx, cfg, entries)
	if err != nil {
		return nil, err
	}
	n := h.Len()
	if cfg.Limit > 0 && cfg.Limit < n {
		n = cfg.Limit
	}
	out := make([]string, 0, n)
	for range n {
		e, err := h.Remove()
		if err != nil {
			return nil, err
		}
		out = append(out, e.line)
	}
	ctxlog.Logger(ctx).Info("sorted", "input", len(entries), "output", len(out))
	return out, nil
}

func top[K cmp.Ordered](ctx context.Context, cfg Config, entries []entry[K]) (string, error) {
	h, err := build(ctx, cfg, entries)
	if err != nil {
		return "", err
	}
	e, err := h.Peek()
	if err != nil {
		return "", err
	}
	return e.line, nil
}
