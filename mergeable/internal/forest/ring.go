// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package forest

// makeSingleton turns n into a ring of one.
func makeSingleton[K, V any](n *Node[K, V]) {
	n.left = n
	n.right = n
}

// insertIntoRing adds the singleton n to ring, at its 'end', ie. between
// ring.left and ring.
func insertIntoRing[K, V any](ring, n *Node[K, V]) {
	end := ring.left
	n.left = end
	n.right = ring
	end.right = n
	ring.left = n
}

// mergeRings splices two disjoint rings into one.
//
//	a ... aEnd   b ... bEnd  =>  a ... aEnd b ... bEnd
func mergeRings[K, V any](a, b *Node[K, V]) {
	aEnd, bEnd := a.left, b.left
	aEnd.right = b
	b.left = aEnd
	bEnd.right = a
	a.left = bEnd
}

// unlink removes n from its ring and returns the next member of that
// ring, or nil if n was the only member. n is left as a singleton.
func unlink[K, V any](n *Node[K, V]) *Node[K, V] {
	next := n.right
	if next == n {
		return nil
	}
	n.left.right = n.right
	n.right.left = n.left
	makeSingleton(n)
	return next
}

// ringLen returns the number of nodes in ring.
func ringLen[K, V any](ring *Node[K, V]) int {
	if ring == nil {
		return 0
	}
	l := 1
	for n := ring.right; n != ring; n = n.right {
		l++
	}
	return l
}
