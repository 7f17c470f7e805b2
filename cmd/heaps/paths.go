// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"cloudeng.io/heaps/graph"
	"cloudeng.io/logging/ctxlog"
)

type pathsFlags struct {
	CommonFlags
	Variant string `subcmd:"variant,fibonacci,'heap variant: fibonacci or pairing'"`
	MST     bool   `subcmd:"mst,false,'compute a minimum spanning tree instead of shortest paths, the source is ignored'"`
}

func paths(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*pathsFlags)
	ctx, done, err := fv.withLogger(ctx)
	defer done()
	if err != nil {
		return err
	}
	g, err := graph.LoadYAML(args[0])
	if err != nil {
		return err
	}
	factory, err := graph.Factory(fv.Variant)
	if err != nil {
		return err
	}
	ctx = ctxlog.WithAttributes(ctx, "graph", args[0], "variant", fv.Variant)
	if fv.MST {
		return spanningTree(ctx, os.Stdout, g, factory)
	}
	return shortestPaths(ctx, os.Stdout, g, args[1], factory)
}

func shortestPaths(ctx context.Context, out io.Writer, g *graph.Graph, source string, factory graph.HeapFactory) error {
	p, err := graph.ShortestPaths(ctx, g, source, factory)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("shortest paths", "source", source, "inserts", p.Stats.Inserts, "decreases", p.Stats.Decreases)
	for _, v := range g.Vertices() {
		d, err := p.Distance(v)
		if err != nil {
			return err
		}
		if math.IsInf(d, 1) {
			fmt.Fprintf(out, "%v: unreachable\n", v)
			continue
		}
		path, err := p.Path(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%v: %v: %v\n", v, d, strings.Join(path, " -> "))
	}
	return nil
}

func spanningTree(ctx context.Context, out io.Writer, g *graph.Graph, factory graph.HeapFactory) error {
	t, err := graph.MinimumSpanningTree(ctx, g, factory)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("spanning tree", "components", t.Components, "inserts", t.Stats.Inserts, "decreases", t.Stats.Decreases)
	for _, e := range t.Edges {
		fmt.Fprintf(out, "%v - %v: %v\n", e.From, e.To, e.Weight)
	}
	fmt.Fprintf(out, "weight: %v, components: %v\n", t.Weight, t.Components)
	return nil
}
