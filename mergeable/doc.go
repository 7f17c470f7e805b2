// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mergeable provides mergeable priority queues: Fibonacci and
// pairing heaps. Both are implemented as forests of heap ordered,
// multi-way, trees and support constant time insertion and merging as
// well as decreasing the key of, and removing, arbitrary entries via the
// handle returned when they were inserted.
//
//	h := mergeable.NewFibonacci[int, string]()
//	a := h.Insert("a", 10)
//	h.Insert("b", 5)
//	h.DecreaseKey(a, 1)
//	v, _ := h.DeleteMin() // v == "a"
//
// Handles are checked on every use so that a handle to an entry that has
// since been removed, or that was merged into another heap, results in
// ErrInvalidHandle rather than corrupting the heap. Handles to entries
// in a heap that is merged into another remain valid for the heap that
// they were merged into.
//
// The heaps are not safe for concurrent use.
package mergeable
