// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package forest

// Node is a single entry in a forest. Siblings, including the roots of
// the forest, form a circular doubly linked ring via left and right.
// The parent and sibling links are navigational only; a node is owned
// by the ring it is a member of.
type Node[K, V any] struct {
	Key   K
	Value V

	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
	child  *Node[K, V] // any member of the child ring, nil if childless.

	rank     int  // number of children.
	marked   bool // lost a child since becoming a non-root.
	minusInf bool // compares less than every other key.

	gen   uint64
	owner *Owner
}

// Parent returns the node's parent, nil for a root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// Left returns the node's left sibling, which is n itself for a singleton ring.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the node's right sibling, which is n itself for a singleton ring.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Child returns a member of the node's child ring or nil.
func (n *Node[K, V]) Child() *Node[K, V] {
	return n.child
}

func (n *Node[K, V]) Rank() int {
	return n.rank
}

func (n *Node[K, V]) Marked() bool {
	return n.marked
}

// SetMarked sets the node's mark. Roots are never marked so SetMarked
// has no effect on a root.
func (n *Node[K, V]) SetMarked(marked bool) {
	if n.parent == nil {
		return
	}
	n.marked = marked
}

func (n *Node[K, V]) IsRoot() bool {
	return n.parent == nil
}

func (n *Node[K, V]) HasChildren() bool {
	return n.child != nil
}

// HasSiblings returns true if the node's ring contains other nodes.
func (n *Node[K, V]) HasSiblings() bool {
	return n.right != nil && n.right != n
}

// Gen returns the node's generation. It changes every time the
// node is released back to its arena.
func (n *Node[K, V]) Gen() uint64 {
	return n.gen
}

// MinusInfinity returns true if the node has been marked as comparing
// less than all other keys.
func (n *Node[K, V]) MinusInfinity() bool {
	return n.minusInf
}

// Owner is an ownership token. A forest's nodes refer to the forest's
// token; when one forest absorbs another the absorbed token is forwarded
// to the absorbing one so that ownership of all of the moved nodes
// changes without visiting them.
type Owner struct {
	next *Owner
}

// Resolve returns the token that o has been forwarded to, compressing
// the forwarding chain as it goes.
func (o *Owner) Resolve() *Owner {
	for o.next != nil {
		if o.next.next != nil {
			o.next = o.next.next
		}
		o = o.next
	}
	return o
}
