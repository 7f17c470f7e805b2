// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mergeable

import (
	"cmp"

	"cloudeng.io/heaps/mergeable/internal/forest"
)

// Pairing represents a pairing heap. Insert, Min, DecreaseKey and Merge
// take O(1) time, DeleteMin and Remove O(log n) amortized time. Unlike
// the Fibonacci heap no rank or mark bookkeeping is required.
type Pairing[K, V any] struct {
	base[K, V]
	roots []*forest.Node[K, V]
}

// NewPairing returns a new, empty, pairing heap.
func NewPairing[K cmp.Ordered, V any](opts ...Option) *Pairing[K, V] {
	return NewPairingFunc[K, V](cmp.Compare[K], opts...)
}

// NewPairingFunc returns a new, empty, pairing heap that orders keys
// using compare.
func NewPairingFunc[K, V any](compare func(a, b K) int, opts ...Option) *Pairing[K, V] {
	return &Pairing[K, V]{base: newBase[K, V](compare, opts)}
}

// DeleteMin removes and returns the value with the smallest key. The
// children of the removed entry become trees in their own right and
// all of the trees are then combined into a single tree using the
// two-pass pairing scheme.
func (h *Pairing[K, V]) DeleteMin() (V, error) {
	m := h.f.Min()
	if m == nil {
		var v V
		return v, ErrEmptyHeap
	}
	v := h.f.Delete(m)
	h.pair()
	h.f.RescanMin()
	return v, nil
}

// union links the root with the larger key under the other, a wins ties.
func (h *Pairing[K, V]) union(a, b *forest.Node[K, V]) *forest.Node[K, V] {
	if h.f.Less(b, a) {
		h.f.Link(b, a)
		return b
	}
	h.f.Link(a, b)
	return a
}

func (h *Pairing[K, V]) pair() {
	roots := h.f.AppendRoots(h.roots[:0])
	defer func() {
		clear(roots)
		h.roots = roots[:0]
	}()
	if len(roots) < 2 {
		return
	}
	// Left to right, pair up consecutive roots.
	w := 0
	for i := 0; i+1 < len(roots); i += 2 {
		roots[w] = h.union(roots[i], roots[i+1])
		w++
	}
	if len(roots)%2 == 1 {
		roots[w] = roots[len(roots)-1]
		w++
	}
	// Right to left, accumulate the winners into a single tree.
	acc := roots[w-1]
	for i := w - 2; i >= 0; i-- {
		acc = h.union(roots[i], acc)
	}
}

// DecreaseKey reduces the key of the entry referred to by handle. A key
// that is not smaller than the current key is ignored. An entry that
// is not a root is cut from its parent to become a new tree.
func (h *Pairing[K, V]) DecreaseKey(handle Handle[K, V], key K) error {
	n, decreased, err := h.decrease(handle, key)
	if err != nil || !decreased {
		return err
	}
	h.decreased(n)
	return nil
}

func (h *Pairing[K, V]) decreased(n *forest.Node[K, V]) {
	if n.IsRoot() {
		h.f.UpdateMin(n)
		return
	}
	h.f.Cut(n)
}

// Remove removes and returns the value referred to by handle.
func (h *Pairing[K, V]) Remove(handle Handle[K, V]) (V, error) {
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
// pairing heap, into h.
func (h *Pairing[K, V]) Merge(other Interface[K, V]) error {
	o, ok := other.(*Pairing[K, V])
	if !ok || o == nil || o == h {
		return ErrIncompatibleHeap
	}
	h.f.Absorb(o.f)
	return nil
}

// Verify checks the heap's structural invariants.
func (h *Pairing[K, V]) Verify() error {
	return h.f.Verify(forest.VerifyOptions{})
}
