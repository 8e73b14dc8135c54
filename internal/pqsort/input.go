// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqsort

import (
	"context"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/file"
	"cloudeng.io/logging/ctxlog"
)

// ReadLines reads the non-blank lines from each of the named files, in
// order, using file.FSReadFile so that any fs.ReadFileFS stored in the
// context is used in preference to the local filesystem. All of the files
// are read even if some fail and the errors for all failures are
// returned.
func ReadLines(ctx context.Context, names ...string) ([]string, error) {
	var errs errors.M
	var lines []string
	for _, name := range names {
		data, err := file.FSReadFile(ctx, name)
		if err != nil {
			errs.Append(errors.Annotate(name, err))
			continue
		}
		n := len(lines)
		lines = append(lines, splitLines(string(data))...)
		ctxlog.Logger(ctx).Debug("read input", "file", name, "lines", len(lines)-n)
	}
	return lines, errs.Err()
}

func splitLines(data string) []string {
	var lines []string
	for _, l := range strings.Split(data, "\n") {
		l = strings.TrimSuffix(l, "\r")
		if len(strings.TrimSpace(l)) == 0 {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
