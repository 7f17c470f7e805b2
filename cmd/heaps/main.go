// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command heaps exercises the mergeable heaps: sorting numbers,
// benchmarking the heap variants against each other and computing
// shortest paths and minimum spanning trees for graphs.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

// CommonFlags represents the flags shared by all sub-commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
}

func init() {
	sortFlagSet := subcmd.NewFlagSet()
	sortFlagSet.MustRegisterFlagStruct(&sortFlags{}, nil, nil)
	benchFlagSet := subcmd.NewFlagSet()
	benchFlagSet.MustRegisterFlagStruct(&benchFlags{}, nil, nil)
	pathsFlagSet := subcmd.NewFlagSet()
	pathsFlagSet.MustRegisterFlagStruct(&pathsFlags{}, nil, nil)

	sortCmd := subcmd.NewCommand("sort", sortFlagSet, sortNumbers)
	sortCmd.Document("sort whitespace separated numbers read from the named files, or stdin", "<file>*")

	benchCmd := subcmd.NewCommand("bench", benchFlagSet, benchmark, subcmd.WithoutArguments())
	benchCmd.Document("run a randomized workload against every heap variant")

	pathsCmd := subcmd.NewCommand("paths", pathsFlagSet, paths, subcmd.ExactlyNumArguments(2))
	pathsCmd.Document("compute shortest paths, or a minimum spanning tree, for a graph read from a yaml file", "<graph.yaml> <source>")

	cmdSet = subcmd.NewCommandSet(benchCmd, pathsCmd, sortCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// withLogger returns a context carrying the logger configured by the
// logging flags and a function to close it.
func (c *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := c.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}
