// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package forest provides the node and forest primitives shared by the
// mergeable heaps: circular sibling rings, linking and cutting of trees,
// merging of forests and an arena that allocates nodes and detects the
// use of stale references to them.
package forest

import "iter"

// Forest is a collection of heap ordered trees whose roots form a
// circular ring. The forest is empty iff Root() == nil iff Min() == nil
// iff Len() == 0.
type Forest[K, V any] struct {
	cmp   func(a, b K) int
	root  *Node[K, V] // any member of the root ring.
	min   *Node[K, V]
	count int
	owner *Owner
	arena arena[K, V]
}

// New returns a new, empty, Forest that uses cmp to order keys and
// allocates nodes in slabs of slabSize.
func New[K, V any](cmp func(a, b K) int, slabSize int) *Forest[K, V] {
	return &Forest[K, V]{
		cmp:   cmp,
		owner: &Owner{},
		arena: newArena[K, V](slabSize),
	}
}

// Len returns the number of nodes in the forest.
func (f *Forest[K, V]) Len() int {
	return f.count
}

// Root returns an arbitrary member of the root ring, nil if the forest
// is empty.
func (f *Forest[K, V]) Root() *Node[K, V] {
	return f.root
}

// Min returns the root with the smallest key.
func (f *Forest[K, V]) Min() *Node[K, V] {
	return f.min
}

// Compare compares two keys using the forest's comparison function.
func (f *Forest[K, V]) Compare(a, b K) int {
	return f.cmp(a, b)
}

// Less returns true if a's key is less than b's key. A node marked as
// minus infinity is less than every node that is not.
func (f *Forest[K, V]) Less(a, b *Node[K, V]) bool {
	switch {
	case a.minusInf:
		return !b.minusInf
	case b.minusInf:
		return false
	}
	return f.cmp(a.Key, b.Key) < 0
}

// MarkMinusInfinity arranges for n to compare less than every other
// node. The caller is responsible for restoring heap order.
func (f *Forest[K, V]) MarkMinusInfinity(n *Node[K, V]) {
	n.minusInf = true
}

// Owns returns true if n, with generation gen, is a live node in this
// forest.
func (f *Forest[K, V]) Owns(n *Node[K, V], gen uint64) bool {
	return n != nil && n.gen == gen && n.owner != nil && n.owner.Resolve() == f.owner
}

// Singleton allocates an isolated node: no parent, no children and a
// sibling ring containing only itself. It is not part of the forest
// until added via AddRoot.
func (f *Forest[K, V]) Singleton(value V, key K) *Node[K, V] {
	n := f.arena.alloc()
	n.Key = key
	n.Value = value
	n.owner = f.owner
	makeSingleton(n)
	return n
}

// Insert allocates a new node and adds it to the forest as a new tree.
func (f *Forest[K, V]) Insert(value V, key K) *Node[K, V] {
	n := f.Singleton(value, key)
	f.AddRoot(n)
	f.count++
	return n
}

// AddRoot adds the detached node n, and the tree rooted at it, to the
// root ring as an unmarked root, updating the min pointer if required.
func (f *Forest[K, V]) AddRoot(n *Node[K, V]) {
	n.parent = nil
	n.marked = false
	if f.root == nil {
		f.root = n
	} else {
		insertIntoRing(f.root, n)
	}
	f.UpdateMin(n)
}

// UpdateMin makes the root n the min if its key is less than the
// current min's.
func (f *Forest[K, V]) UpdateMin(n *Node[K, V]) {
	if f.min == nil || f.Less(n, f.min) {
		f.min = n
	}
}

// SpliceOut removes n from the ring it is a member of. If n's parent
// refers to n as its child, that reference is moved to n's sibling or
// cleared if n was an only child; the same applies to the forest's root
// reference. n is left as a detached singleton with no parent.
func (f *Forest[K, V]) SpliceOut(n *Node[K, V]) {
	next := unlink(n)
	if p := n.parent; p != nil {
		if p.child == n {
			p.child = next
		}
		p.rank--
		n.parent = nil
		return
	}
	if f.root == n {
		f.root = next
	}
}

// Link makes child, a root, a child of parent. The caller must ensure
// that parent's key is not greater than child's.
func (f *Forest[K, V]) Link(parent, child *Node[K, V]) {
	f.SpliceOut(child)
	if parent.child == nil {
		parent.child = child
	} else {
		insertIntoRing(parent.child, child)
	}
	child.parent = parent
	child.marked = false
	parent.rank++
	if f.min == child {
		f.min = parent
	}
}

// Cut detaches the subtree rooted at n from its parent and adds it to
// the forest as a new, unmarked, tree.
func (f *Forest[K, V]) Cut(n *Node[K, V]) {
	f.SpliceOut(n)
	f.AddRoot(n)
}

// PromoteChildren moves all of n's children into the root ring as
// unmarked roots. The min pointer is not updated.
func (f *Forest[K, V]) PromoteChildren(n *Node[K, V]) {
	first := n.child
	if first == nil {
		return
	}
	c := first
	for {
		c.parent = nil
		c.marked = false
		if c = c.right; c == first {
			break
		}
	}
	n.child = nil
	n.rank = 0
	if f.root == nil {
		f.root = first
		return
	}
	mergeRings(f.root, first)
}

// Delete removes the root n from the forest, promoting its children to
// roots, and returns its value. The node is released to the arena and
// any references to it become stale. The min pointer is cleared if it
// referred to n and must be recomputed by the caller via RescanMin.
func (f *Forest[K, V]) Delete(n *Node[K, V]) V {
	f.PromoteChildren(n)
	f.SpliceOut(n)
	if f.min == n {
		f.min = nil
	}
	v := n.Value
	f.arena.release(n)
	f.count--
	return v
}

// RescanMin recomputes the min pointer by scanning the root ring.
// Ties are resolved in favour of the root closest to Root().
func (f *Forest[K, V]) RescanMin() {
	f.min = f.root
	if f.root == nil {
		return
	}
	for n := f.root.right; n != f.root; n = n.right {
		if f.Less(n, f.min) {
			f.min = n
		}
	}
}

// AppendRoots appends all of the current roots to dst, starting with Root().
func (f *Forest[K, V]) AppendRoots(dst []*Node[K, V]) []*Node[K, V] {
	if f.root == nil {
		return dst
	}
	dst = append(dst, f.root)
	for n := f.root.right; n != f.root; n = n.right {
		dst = append(dst, n)
	}
	return dst
}

// Roots returns an iterator over the root ring. The forest must not be
// modified whilst iterating.
func (f *Forest[K, V]) Roots() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		if f.root == nil {
			return
		}
		n := f.root
		for {
			if !yield(n) {
				return
			}
			if n = n.right; n == f.root {
				return
			}
		}
	}
}

// Trees returns the number of trees in the forest.
func (f *Forest[K, V]) Trees() int {
	return ringLen(f.root)
}

// Absorb moves all of other's trees into f. Nodes that belonged to other
// now belong to f and other is left empty. Absorbing f into itself has
// no effect.
func (f *Forest[K, V]) Absorb(other *Forest[K, V]) {
	if other == f {
		return
	}
	f.arena.absorb(&other.arena)
	if other.root == nil {
		return
	}
	if f.root == nil {
		f.root, f.min = other.root, other.min
	} else {
		mergeRings(f.root, other.root)
		if f.Less(other.min, f.min) {
			f.min = other.min
		}
	}
	f.count += other.count
	other.owner.next = f.owner
	other.owner = &Owner{}
	other.root, other.min, other.count = nil, nil, 0
}
