// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"cloudeng.io/heaps/mergeable"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

type sortFlags struct {
	CommonFlags
	Variant string `subcmd:"variant,fibonacci,'heap variant: fibonacci or pairing'"`
}

func sortNumbers(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*sortFlags)
	ctx, done, err := fv.withLogger(ctx)
	defer done()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return heapSort(ctx, fv.Variant, os.Stdout, input{name: "stdin", rd: os.Stdin})
	}
	inputs := make([]input, 0, len(args))
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		inputs = append(inputs, input{name: name, rd: f})
	}
	return heapSort(ctx, fv.Variant, os.Stdout, inputs...)
}

type input struct {
	name string
	rd   io.Reader
}

// readHeap reads whitespace separated numbers into a new heap.
func readHeap(variant string, in input) (mergeable.Interface[float64, float64], error) {
	h, err := mergeable.New[float64, float64](variant)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(in.rd)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", in.name, err)
		}
		h.Insert(v, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%v: %w", in.name, err)
	}
	return h, nil
}

// heapSort reads each input into its own heap concurrently, merges
// the heaps and writes their contents in ascending order to out.
func heapSort(ctx context.Context, variant string, out io.Writer, inputs ...input) error {
	if len(inputs) == 0 {
		return nil
	}
	heaps := make([]mergeable.Interface[float64, float64], len(inputs))
	var g errgroup.T
	for i, in := range inputs {
		g.Go(func() error {
			h, err := readHeap(variant, in)
			heaps[i] = h
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	h := heaps[0]
	for _, o := range heaps[1:] {
		if err := h.Merge(o); err != nil {
			return err
		}
	}
	ctxlog.Logger(ctx).Info("sorting", "variant", variant, "inputs", len(inputs), "entries", h.Len(), "trees", h.Trees())
	wr := bufio.NewWriter(out)
	for h.Len() > 0 {
		v, err := h.DeleteMin()
		if err != nil {
			return err
		}
		fmt.Fprintln(wr, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return wr.Flush()
}
