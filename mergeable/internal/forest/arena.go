// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package forest

// DefaultSlabSize is the number of nodes allocated at a time by an arena
// when no other size is specified.
const DefaultSlabSize = 64

// arena allocates nodes from slabs and recycles released nodes via
// a free list threaded through their right pointers. Node addresses are
// stable since slabs are never resized.
type arena[K, V any] struct {
	slabSize int
	slab     []Node[K, V]
	free     *Node[K, V]
	freeTail *Node[K, V]
}

func newArena[K, V any](slabSize int) arena[K, V] {
	if slabSize <= 0 {
		slabSize = DefaultSlabSize
	}
	return arena[K, V]{slabSize: slabSize}
}

func (a *arena[K, V]) alloc() *Node[K, V] {
	if n := a.free; n != nil {
		a.free = n.right
		if a.free == nil {
			a.freeTail = nil
		}
		n.right = nil
		return n
	}
	if len(a.slab) == 0 {
		a.slab = make([]Node[K, V], a.slabSize)
	}
	n := &a.slab[0]
	a.slab = a.slab[1:]
	return n
}

// release clears n, advances its generation and adds it to the free list.
func (a *arena[K, V]) release(n *Node[K, V]) {
	*n = Node[K, V]{gen: n.gen + 1}
	n.right = a.free
	a.free = n
	if a.freeTail == nil {
		a.freeTail = n
	}
}

// absorb takes over the free list of other, leaving other's empty.
func (a *arena[K, V]) absorb(other *arena[K, V]) {
	if other.free == nil {
		return
	}
	if a.free == nil {
		a.free, a.freeTail = other.free, other.freeTail
	} else {
		a.freeTail.right = other.free
		a.freeTail = other.freeTail
	}
	other.free, other.freeTail = nil, nil
}

func (a *arena[K, V]) freeLen() int {
	l := 0
	for n := a.free; n != nil; n = n.right {
		l++
	}
	return l
}
