// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mergeable

type options struct {
	slabSize int
}

// Option represents the options that can be passed to the heap constructors.
type Option func(*options)

// WithSlabSize sets the number of heap entries that are allocated at
// a time. Larger values reduce the number of allocations made by Insert
// at the cost of memory that may go unused.
func WithSlabSize(n int) Option {
	return func(o *options) {
		o.slabSize = n
	}
}
