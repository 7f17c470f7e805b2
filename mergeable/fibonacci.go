// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mergeable

import (
	"cmp"
	"math"

	"cloudeng.io/heaps/mergeable/internal/forest"
)

// Fibonacci represents a Fibonacci heap. Insert, Min, DecreaseKey and
// Merge take O(1) amortized time, DeleteMin and Remove O(log n).
type Fibonacci[K, V any] struct {
	base[K, V]
	roots   []*forest.Node[K, V]
	buckets []*forest.Node[K, V]
}

// NewFibonacci returns a new, empty, Fibonacci heap.
func NewFibonacci[K cmp.Ordered, V any](opts ...Option) *Fibonacci[K, V] {
	return NewFibonacciFunc[K, V](cmp.Compare[K], opts...)
}

// NewFibonacciFunc returns a new, empty, Fibonacci heap that orders
// keys using compare.
func NewFibonacciFunc[K, V any](compare func(a, b K) int, opts ...Option) *Fibonacci[K, V] {
	return &Fibonacci[K, V]{base: newBase[K, V](compare, opts)}
}

// DeleteMin removes and returns the value with the smallest key. The
// children of the removed entry become trees in their own right after
// which trees of equal rank are linked until all of the remaining trees
// have distinct ranks.
func (h *Fibonacci[K, V]) DeleteMin() (V, error) {
	m := h.f.Min()
	if m == nil {
		var v V
		return v, ErrEmptyHeap
	}
	v := h.f.Delete(m)
	h.consolidate()
	h.f.RescanMin()
	return v, nil
}

var lnPhi = math.Log(math.Phi)

// maxRank returns the number of distinct ranks that trees in a heap
// of n entries can have, ie. ceil(log_phi(n)) + 1.
func maxRank(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log(float64(n))/lnPhi)) + 1
}

func (h *Fibonacci[K, V]) consolidate() {
	if h.f.Len() == 0 {
		return
	}
	h.roots = h.f.AppendRoots(h.roots[:0])
	if nr := maxRank(h.f.Len()); cap(h.buckets) < nr {
		h.buckets = make([]*forest.Node[K, V], nr)
	} else {
		h.buckets = h.buckets[:nr]
	}
	for _, r := range h.roots {
		for {
			rank := r.Rank()
			for rank >= len(h.buckets) {
				h.buckets = append(h.buckets, nil)
			}
			prev := h.buckets[rank]
			if prev == nil {
				h.buckets[rank] = r
				break
			}
			h.buckets[rank] = nil
			if h.f.Less(r, prev) {
				h.f.Link(r, prev)
				continue
			}
			// Ties go to the root encountered first.
			h.f.Link(prev, r)
			r = prev
		}
	}
	clear(h.roots)
	clear(h.buckets)
}

// DecreaseKey reduces the key of the entry referred to by handle. A key
// that is not smaller than the current key is ignored. An entry that
// is not a root is cut from its parent to become a new tree, as are any
// of its ancestors that have already lost a child.
func (h *Fibonacci[K, V]) DecreaseKey(handle Handle[K, V], key K) error {
	n, decreased, err := h.decrease(handle, key)
	if err != nil || !decreased {
		return err
	}
	h.decreased(n)
	return nil
}

func (h *Fibonacci[K, V]) decreased(n *forest.Node[K, V]) {
	p := n.Parent()
	if p == nil {
		h.f.UpdateMin(n)
		return
	}
	h.f.Cut(n)
	for !p.IsRoot() {
		if !p.Marked() {
			p.SetMarked(true)
			return
		}
		gp := p.Parent()
		h.f.Cut(p)
		p = gp
	}
}

// Remove removes and returns the value referred to by handle.
func (h *Fibonacci[K, V]) Remove(handle Handle[K, V]) (V, error) {
	n, err := h.lookupForRemove(handle)
	if err != nil {
		var v V
		return v, err
	}
	h.f.MarkMinusInfinity(n)
	h.decreased(n)
	return h.DeleteMin()
}

// Merge moves all of the entries in other, which must also be a
// Fibonacci heap, into h.
func (h *Fibonacci[K, V]) Merge(other Interface[K, V]) error {
	o, ok := other.(*Fibonacci[K, V])
	if !ok || o == nil || o == h {
		return ErrIncompatibleHeap
	}
	h.f.Absorb(o.f)
	return nil
}

// Verify checks the heap's structural invariants.
func (h *Fibonacci[K, V]) Verify() error {
	return h.f.Verify(forest.VerifyOptions{AllowMarks: true})
}
