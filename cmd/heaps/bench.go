// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"cloudeng.io/heaps/mergeable"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

type benchFlags struct {
	CommonFlags
	N         int   `subcmd:"n,100000,number of entries to insert"`
	Decreases int   `subcmd:"decreases,50000,number of decrease key operations"`
	Removes   int   `subcmd:"removes,10000,number of remove operations"`
	Seed      int64 `subcmd:"seed,0,seed for the random number generator"`
	Verify    bool  `subcmd:"verify,false,verify the heap invariants after every operation"`
}

type workload struct {
	n, decreases, removes int
	seed                  int64
	verify                bool
}

type benchResult struct {
	variant                         string
	insert, decrease, remove, drain time.Duration
	maxTrees                        int
}

func benchmark(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*benchFlags)
	ctx, done, err := fv.withLogger(ctx)
	defer done()
	if err != nil {
		return err
	}
	results, err := runWorkloads(ctx, workload{
		n:         fv.N,
		decreases: fv.Decreases,
		removes:   fv.Removes,
		seed:      fv.Seed,
		verify:    fv.Verify,
	}, mergeable.Variants()...)
	if err != nil {
		return err
	}
	return printResults(os.Stdout, results)
}

// runWorkloads runs the same workload against each of the named variants
// concurrently.
func runWorkloads(ctx context.Context, wl workload, variants ...string) ([]benchResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]benchResult, len(variants))
	for i, variant := range variants {
		g.Go(func() error {
			r, err := runWorkload(ctx, variant, wl)
			results[i] = r
			return err
		})
	}
	return results, g.Wait()
}

func runWorkload(ctx context.Context, variant string, wl workload) (benchResult, error) {
	res := benchResult{variant: variant}
	h, err := mergeable.New[int, int](variant, mergeable.WithSlabSize(max(wl.n, 1)))
	if err != nil {
		return res, err
	}
	logger := ctxlog.Logger(ctx).With("variant", variant)
	check := func(op string) error {
		res.maxTrees = max(res.maxTrees, h.Trees())
		if !wl.verify {
			return nil
		}
		if err := h.Verify(); err != nil {
			return fmt.Errorf("%v: after %v: %w", variant, op, err)
		}
		return nil
	}
	rnd := rand.New(rand.NewSource(wl.seed)) // #nosec: G404
	keyRange := max(wl.n*10, 1)
	handles := make([]mergeable.Handle[int, int], wl.n)

	start := time.Now()
	for i := range handles {
		handles[i] = h.Insert(i, rnd.Intn(keyRange))
		if err := check("insert"); err != nil {
			return res, err
		}
	}
	res.insert = time.Since(start)
	logger.Debug("inserted", "entries", h.Len(), "trees", h.Trees())

	start = time.Now()
	for i := 0; i < wl.decreases && wl.n > 0; i++ {
		hd := handles[rnd.Intn(wl.n)]
		if err := h.DecreaseKey(hd, hd.Key()-rnd.Intn(keyRange/10+1)); err != nil {
			return res, err
		}
		if i%64 == 0 {
			// Interleave deletions so that the heap has structure to cut.
			v, err := h.DeleteMin()
			if err != nil {
				return res, err
			}
			handles[v] = h.Insert(v, rnd.Intn(keyRange))
		}
		if err := check("decrease key"); err != nil {
			return res, err
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
	}
	res.decrease = time.Since(start)

	start = time.Now()
	for i := 0; i < wl.removes && h.Len() > 0; i++ {
		hd := handles[rnd.Intn(wl.n)]
		if !hd.Valid() {
			continue
		}
		if _, err := h.Remove(hd); err != nil {
			return res, err
		}
		if err := check("remove"); err != nil {
			return res, err
		}
	}
	res.remove = time.Since(start)
	logger.Debug("removed", "entries", h.Len(), "trees", h.Trees())

	start = time.Now()
	prev := 0
	for first := true; h.Len() > 0; first = false {
		k, err := h.MinKey()
		if err != nil {
			return res, err
		}
		if !first && k < prev {
			return res, fmt.Errorf("%v: keys out of order: %v follows %v", variant, k, prev)
		}
		prev = k
		if _, err := h.DeleteMin(); err != nil {
			return res, err
		}
		if err := check("delete min"); err != nil {
			return res, err
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
	}
	res.drain = time.Since(start)
	return res, nil
}

func printResults(out io.Writer, results []benchResult) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "variant\tinsert\tdecrease\tremove\tdrain\tmax trees\t\n")
	for _, r := range results {
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\t\n", r.variant, r.insert, r.decrease, r.remove, r.drain, r.maxTrees)
	}
	return tw.Flush()
}
