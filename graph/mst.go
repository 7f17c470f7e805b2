// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph

import (
	"context"
	"math"

	"cloudeng.io/heaps/mergeable"
	"cloudeng.io/logging/ctxlog"
)

// TreeEdge represents an edge in a spanning tree.
type TreeEdge struct {
	From, To string
	Weight   float64
}

// Tree represents a minimum spanning forest, one tree per connected
// component.
type Tree struct {
	Edges      []TreeEdge
	Weight     float64
	Components int
	Stats      Stats
}

// MinimumSpanningTree computes a minimum spanning forest of the undirected
// graph g using Prim's algorithm with a heap obtained from factory.
// Components are grown in turn starting with the lowest numbered vertex
// not yet in any tree.
func MinimumSpanningTree(ctx context.Context, g *Graph, factory HeapFactory) (*Tree, error) {
	if g.Directed() {
		return nil, ErrDirected
	}
	n := g.Len()
	key := make([]float64, n)
	parent := make([]int, n)
	for i := range key {
		key[i] = math.Inf(1)
		parent[i] = -1
	}
	logger := ctxlog.Logger(ctx).With("algorithm", "prim")
	inTree := make([]bool, n)
	handles := make([]mergeable.Handle[float64, int], n)
	h := factory()
	t := &Tree{}
	for root := range n {
		if inTree[root] {
			continue
		}
		t.Components++
		key[root] = 0
		handles[root] = h.Insert(root, 0)
		t.Stats.Inserts++
		for h.Len() > 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			u, err := h.DeleteMin()
			if err != nil {
				return nil, err
			}
			t.Stats.DeleteMins++
			inTree[u] = true
			if p := parent[u]; p >= 0 {
				t.Edges = append(t.Edges, TreeEdge{From: g.Name(p), To: g.Name(u), Weight: key[u]})
				t.Weight += key[u]
			}
			for _, e := range g.Edges(u) {
				v := e.To
				if inTree[v] || e.Weight >= key[v] {
					continue
				}
				key[v], parent[v] = e.Weight, u
				if !handles[v].Valid() {
					handles[v] = h.Insert(v, e.Weight)
					t.Stats.Inserts++
					continue
				}
				if err := h.DecreaseKey(handles[v], e.Weight); err != nil {
					return nil, err
				}
				t.Stats.Decreases++
			}
		}
		logger.Debug("component", "root", g.Name(root), "edges", len(t.Edges), "weight", t.Weight)
	}
	return t, nil
}
