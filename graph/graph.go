// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package graph provides weighted graphs and the shortest path and
// minimum spanning tree algorithms that rely on a mergeable heap's
// DecreaseKey operation.
package graph

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
	"cloudeng.io/heaps/mergeable"
)

var (
	// ErrNegativeWeight is returned by AddEdge for negative, infinite or
	// NaN weights.
	ErrNegativeWeight = errors.New("negative or invalid edge weight")
	// ErrUnknownVertex is returned for vertex names that are not in the graph.
	ErrUnknownVertex = errors.New("unknown vertex")
	// ErrDirected is returned by MinimumSpanningTree for directed graphs.
	ErrDirected = errors.New("graph is directed")
)

// Edge represents an edge to the vertex with index To.
type Edge struct {
	To     int
	Weight float64
}

// Graph represents a weighted graph with named vertices. Vertices are
// identified by their index which is assigned in the order that they
// are added.
type Graph struct {
	directed bool
	names    []string
	index    map[string]int
	adj      [][]Edge
	edges    int
}

// New returns a new, empty, graph.
func New(directed bool) *Graph {
	return &Graph{
		directed: directed,
		index:    map[string]int{},
	}
}

// Directed returns true if the graph is directed.
func (g *Graph) Directed() bool {
	return g.directed
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.names)
}

// NumEdges returns the number of edges, an undirected edge is counted once.
func (g *Graph) NumEdges() int {
	return g.edges
}

// AddVertex adds the named vertex, if not already present, and
// returns its index.
func (g *Graph) AddVertex(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	i := len(g.names)
	g.names = append(g.names, name)
	g.index[name] = i
	g.adj = append(g.adj, nil)
	return i
}

// Vertex returns the index of the named vertex.
func (g *Graph) Vertex(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Name returns the name of the vertex with index i.
func (g *Graph) Name(i int) string {
	return g.names[i]
}

// Vertices returns the names of all vertices in index order.
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.names...)
}

// Edges returns the edges leaving the vertex with index i.
func (g *Graph) Edges(i int) []Edge {
	return g.adj[i]
}

// AddEdge adds an edge, adding the vertices if need be. For undirected
// graphs the edge may be traversed in either direction.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if len(from) == 0 || len(to) == 0 {
		return fmt.Errorf("%w: empty vertex name in edge %q -> %q", ErrUnknownVertex, from, to)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %q -> %q: %v", ErrNegativeWeight, from, to, weight)
	}
	f, t := g.AddVertex(from), g.AddVertex(to)
	g.adj[f] = append(g.adj[f], Edge{To: t, Weight: weight})
	if !g.directed && f != t {
		g.adj[t] = append(g.adj[t], Edge{To: f, Weight: weight})
	}
	g.edges++
	return nil
}

// HeapFactory returns a new, empty, heap keyed by distance with vertex
// indices as values.
type HeapFactory func() mergeable.Interface[float64, int]

// Factory returns a HeapFactory for the named heap variant.
func Factory(variant string) (HeapFactory, error) {
	if _, err := mergeable.New[float64, int](variant); err != nil {
		return nil, err
	}
	return func() mergeable.Interface[float64, int] {
		h, _ := mergeable.New[float64, int](variant)
		return h
	}, nil
}

func (g *Graph) lookup(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
	}
	return i, nil
}
