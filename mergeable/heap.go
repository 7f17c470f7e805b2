// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mergeable

import (
	"cmp"
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/heaps/mergeable/internal/forest"
)

var (
	// ErrEmptyHeap is returned by Min, MinKey, DeleteMin and Remove when
	// the heap is empty.
	ErrEmptyHeap = errors.New("empty heap")
	// ErrInvalidHandle is returned when a handle refers to an entry that has
	// been removed or that belongs to a different heap.
	ErrInvalidHandle = errors.New("invalid handle")
	// ErrLengthMismatch is returned by Build when the number of values
	// and keys differ.
	ErrLengthMismatch = errors.New("values and keys have different lengths")
	// ErrIncompatibleHeap is returned by Merge when the heap to be merged is
	// not of the same variant as the receiver or is the receiver itself.
	ErrIncompatibleHeap = errors.New("incompatible heap")
	// ErrUnknownVariant is returned by New for an unrecognised variant.
	ErrUnknownVariant = errors.New("unknown heap variant")
)

// Interface represents the operations supported by all of the mergeable
// heap variants. Implementations are not safe for concurrent use.
type Interface[K, V any] interface {
	// Build inserts the supplied values with the corresponding keys.
	Build(values []V, keys []K) error
	// Len returns the number of entries in the heap.
	Len() int
	// Insert adds value with the given key and returns a handle to it.
	Insert(value V, key K) Handle[K, V]
	// Min returns the value with the smallest key.
	Min() (V, error)
	// MinKey returns the smallest key.
	MinKey() (K, error)
	// DeleteMin removes and returns the value with the smallest key.
	DeleteMin() (V, error)
	// Remove removes and returns the value referred to by the handle.
	Remove(h Handle[K, V]) (V, error)
	// DecreaseKey reduces the key of the entry referred to by the
	// handle. Keys that are not smaller than the current key are ignored.
	DecreaseKey(h Handle[K, V], key K) error
	// Merge moves all of the entries of other, which must be of the same
	// variant, into the receiver leaving other empty. Handles to entries
	// in other remain valid, but for the receiver only.
	Merge(other Interface[K, V]) error
	// Trees returns the number of trees that make up the heap.
	Trees() int
	// Verify checks the heap's structural invariants.
	Verify() error
}

// Handle refers to an entry in a heap. Handles are returned by Insert
// and become stale once the entry is removed. The accessors return zero
// values for stale handles.
type Handle[K, V any] struct {
	n   *forest.Node[K, V]
	gen uint64
}

func newHandle[K, V any](n *forest.Node[K, V]) Handle[K, V] {
	return Handle[K, V]{n: n, gen: n.Gen()}
}

// Valid returns true if the handle refers to an entry that has not been
// removed.
func (h Handle[K, V]) Valid() bool {
	return h.n != nil && h.n.Gen() == h.gen
}

// Value returns the entry's value.
func (h Handle[K, V]) Value() V {
	if !h.Valid() {
		var v V
		return v
	}
	return h.n.Value
}

// Key returns the entry's key.
func (h Handle[K, V]) Key() K {
	if !h.Valid() {
		var k K
		return k
	}
	return h.n.Key
}

// HasParent returns true if the entry is not the root of a tree.
func (h Handle[K, V]) HasParent() bool {
	return h.Valid() && !h.n.IsRoot()
}

// HasChildren returns true if the entry has children.
func (h Handle[K, V]) HasChildren() bool {
	return h.Valid() && h.n.HasChildren()
}

// HasSiblings returns true if the entry has siblings, for a root these
// are the other roots.
func (h Handle[K, V]) HasSiblings() bool {
	return h.Valid() && h.n.HasSiblings()
}

// Supported variants.
const (
	FibonacciVariant = "fibonacci"
	PairingVariant   = "pairing"
)

// Variants returns the names of the supported variants.
func Variants() []string {
	return []string{FibonacciVariant, PairingVariant}
}

// New returns a new heap of the named variant.
func New[K cmp.Ordered, V any](variant string, opts ...Option) (Interface[K, V], error) {
	return NewFunc[K, V](variant, cmp.Compare[K], opts...)
}

// NewFunc returns a new heap of the named variant that orders keys
// using compare.
func NewFunc[K, V any](variant string, compare func(a, b K) int, opts ...Option) (Interface[K, V], error) {
	switch variant {
	case FibonacciVariant:
		return NewFibonacciFunc[K, V](compare, opts...), nil
	case PairingVariant:
		return NewPairingFunc[K, V](compare, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q, not one of %v", ErrUnknownVariant, variant, Variants())
}

// base implements the operations common to both variants.
type base[K, V any] struct {
	f *forest.Forest[K, V]
}

func newBase[K, V any](compare func(a, b K) int, opts []Option) base[K, V] {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return base[K, V]{f: forest.New[K, V](compare, o.slabSize)}
}

// Build calls Insert for each value and key. No values are inserted if
// the lengths of values and keys differ.
func (b *base[K, V]) Build(values []V, keys []K) error {
	if len(values) != len(keys) {
		return fmt.Errorf("%w: %v values, %v keys", ErrLengthMismatch, len(values), len(keys))
	}
	for i, v := range values {
		b.f.Insert(v, keys[i])
	}
	return nil
}

// Len returns the number of entries in the heap.
func (b *base[K, V]) Len() int {
	return b.f.Len()
}

// Insert adds value, with the given key, to the heap as a new tree.
func (b *base[K, V]) Insert(value V, key K) Handle[K, V] {
	return newHandle(b.f.Insert(value, key))
}

// Min returns the value with the smallest key.
func (b *base[K, V]) Min() (V, error) {
	m := b.f.Min()
	if m == nil {
		var v V
		return v, ErrEmptyHeap
	}
	return m.Value, nil
}

// MinKey returns the smallest key.
func (b *base[K, V]) MinKey() (K, error) {
	m := b.f.Min()
	if m == nil {
		var k K
		return k, ErrEmptyHeap
	}
	return m.Key, nil
}

// Trees returns the number of trees in the heap.
func (b *base[K, V]) Trees() int {
	return b.f.Trees()
}

func (b *base[K, V]) lookup(h Handle[K, V]) (*forest.Node[K, V], error) {
	if !b.f.Owns(h.n, h.gen) {
		return nil, ErrInvalidHandle
	}
	return h.n, nil
}

func (b *base[K, V]) lookupForRemove(h Handle[K, V]) (*forest.Node[K, V], error) {
	if b.f.Len() == 0 {
		return nil, ErrEmptyHeap
	}
	return b.lookup(h)
}

// decrease sets the key of the entry referred to by h if key is smaller
// than its current key and reports whether it did so.
func (b *base[K, V]) decrease(h Handle[K, V], key K) (*forest.Node[K, V], bool, error) {
	n, err := b.lookup(h)
	if err != nil {
		return nil, false, err
	}
	if b.f.Compare(key, n.Key) >= 0 {
		return n, false, nil
	}
	n.Key = key
	return n, true, nil
}
