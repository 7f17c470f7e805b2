// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph

import (
	"context"
	"math"
	"slices"

	"cloudeng.io/heaps/mergeable"
	"cloudeng.io/logging/ctxlog"
)

// Paths represents the shortest paths from a single source vertex.
type Paths struct {
	Stats  Stats
	g      *Graph
	source int
	dist   []float64
	prev   []int
}

// Source returns the name of the source vertex.
func (p *Paths) Source() string {
	return p.g.Name(p.source)
}

// Distance returns the length of the shortest path to the named vertex,
// +Inf if it is not reachable from the source.
func (p *Paths) Distance(to string) (float64, error) {
	t, err := p.g.lookup(to)
	if err != nil {
		return 0, err
	}
	return p.dist[t], nil
}

// Path returns the vertices along the shortest path from the source to
// the named vertex, inclusive of both. It returns nil if the vertex is
// not reachable.
func (p *Paths) Path(to string) ([]string, error) {
	t, err := p.g.lookup(to)
	if err != nil {
		return nil, err
	}
	if math.IsInf(p.dist[t], 1) {
		return nil, nil
	}
	var path []string
	for v := t; v >= 0; v = p.prev[v] {
		path = append(path, p.g.Name(v))
	}
	slices.Reverse(path)
	return path, nil
}

// Stats records the heap operations performed by a graph algorithm.
type Stats struct {
	Inserts, Decreases, DeleteMins int
}

// ShortestPaths computes the shortest paths from source to all other
// vertices using Dijkstra's algorithm with a heap obtained from factory.
// Each reachable vertex is inserted into the heap once when first reached
// and has its key decreased whenever a shorter path to it is found.
func ShortestPaths(ctx context.Context, g *Graph, source string, factory HeapFactory) (*Paths, error) {
	src, err := g.lookup(source)
	if err != nil {
		return nil, err
	}
	n := g.Len()
	p := &Paths{
		g:      g,
		source: src,
		dist:   make([]float64, n),
		prev:   make([]int, n),
	}
	for i := range p.dist {
		p.dist[i] = math.Inf(1)
		p.prev[i] = -1
	}
	logger := ctxlog.Logger(ctx).With("algorithm", "dijkstra", "source", source)
	settled := make([]bool, n)
	handles := make([]mergeable.Handle[float64, int], n)
	h := factory()
	p.dist[src] = 0
	handles[src] = h.Insert(src, 0)
	p.Stats.Inserts++
	for h.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		u, err := h.DeleteMin()
		if err != nil {
			return nil, err
		}
		p.Stats.DeleteMins++
		settled[u] = true
		logger.Debug("settled", "vertex", g.Name(u), "distance", p.dist[u])
		for _, e := range g.Edges(u) {
			v := e.To
			if settled[v] {
				continue
			}
			d := p.dist[u] + e.Weight
			if d >= p.dist[v] {
				continue
			}
			p.dist[v], p.prev[v] = d, u
			if !handles[v].Valid() {
				handles[v] = h.Insert(v, d)
				p.Stats.Inserts++
				continue
			}
			if err := h.DecreaseKey(handles[v], d); err != nil {
				return nil, err
			}
			p.Stats.Decreases++
		}
	}
	logger.Debug("shortest paths", "inserts", p.Stats.Inserts, "decreases", p.Stats.Decreases, "deletemins", p.Stats.DeleteMins)
	return p, nil
}
