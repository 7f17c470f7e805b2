// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package forest

import (
	"fmt"

	"cloudeng.io/errors"
)

// VerifyOptions controls the checks made by Verify.
type VerifyOptions struct {
	// AllowMarks permits non-root nodes to be marked.
	AllowMarks bool
	// MaxErrors limits the number of violations reported, zero means no limit.
	MaxErrors int
}

type verifier[K, V any] struct {
	f     *Forest[K, V]
	opts  VerifyOptions
	errs  errors.M
	nerrs int
}

func (v *verifier[K, V]) report(format string, args ...any) bool {
	v.nerrs++
	if v.opts.MaxErrors > 0 && v.nerrs > v.opts.MaxErrors {
		return false
	}
	v.errs.Append(fmt.Errorf(format, args...))
	return true
}

// Verify checks the structural invariants of the forest and returns
// an error describing every violation found:
//
//   - every sibling ring is circular and doubly linked.
//   - every member of a child ring refers to the ring's parent, every
//     root has no parent.
//   - no child has a key less than its parent's.
//   - each node's rank is the number of its children.
//   - no root is marked, and no node is marked unless opts.AllowMarks.
//   - the min pointer refers to a root with the smallest key.
//   - the count matches the number of reachable nodes, all of which are
//     owned by this forest.
func (f *Forest[K, V]) Verify(opts VerifyOptions) error {
	v := &verifier[K, V]{f: f, opts: opts}
	v.verify()
	return v.errs.Err()
}

func (v *verifier[K, V]) verify() {
	f := v.f
	if (f.root == nil) != (f.min == nil) || (f.root == nil) != (f.count == 0) {
		v.report("inconsistent empty state: root %p, min %p, count %v", f.root, f.min, f.count)
		return
	}
	if f.root == nil {
		return
	}
	if f.min.parent != nil {
		v.report("min pointer refers to a non-root node: %v", f.min.Key)
	}
	// An upper bound on the number of nodes that can be visited guards
	// against rings that are not circular.
	limit := f.count
	visited := 0
	type ring struct {
		parent *Node[K, V]
		first  *Node[K, V]
	}
	stack := []ring{{nil, f.root}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := r.first
		for {
			if visited++; visited > limit {
				v.report("more than %v nodes are reachable", limit)
				return
			}
			if !v.node(r.parent, n) {
				return
			}
			if n.child != nil {
				stack = append(stack, ring{n, n.child})
			}
			if n = n.right; n == r.first {
				break
			}
		}
	}
	if visited != f.count {
		v.report("count is %v, but %v nodes are reachable", f.count, visited)
	}
}

// node checks n and returns false if the traversal should stop.
func (v *verifier[K, V]) node(parent, n *Node[K, V]) bool {
	f := v.f
	if n.left == nil || n.right == nil {
		v.report("node %v: nil sibling link", n.Key)
		return false
	}
	if n.right.left != n || n.left.right != n {
		v.report("node %v: sibling ring is not doubly linked", n.Key)
		return false
	}
	ok := true
	if n.parent != parent {
		ok = v.report("node %v: wrong parent", n.Key)
	}
	if parent == nil {
		if n.marked {
			ok = v.report("root %v: is marked", n.Key)
		}
		if f.Less(n, f.min) {
			ok = v.report("root %v: is less than the min %v", n.Key, f.min.Key)
		}
	} else {
		if f.Less(n, parent) {
			ok = v.report("node %v: is less than its parent %v", n.Key, parent.Key)
		}
		if n.marked && !v.opts.AllowMarks {
			ok = v.report("node %v: is marked", n.Key)
		}
	}
	if got, want := n.rank, ringLen(n.child); got != want {
		ok = v.report("node %v: rank is %v, but has %v children", n.Key, got, want)
	}
	if n.owner == nil || n.owner.Resolve() != f.owner {
		ok = v.report("node %v: is not owned by this forest", n.Key)
	}
	return ok
}
