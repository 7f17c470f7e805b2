// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil/cmdyaml"
	"gopkg.in/yaml.v3"
)

type edgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

type graphSpec struct {
	Directed bool       `yaml:"directed"`
	Vertices []string   `yaml:"vertices"`
	Edges    []edgeSpec `yaml:"edges"`
}

// ParseYAML parses a graph in YAML format, for example:
//
//	directed: false
//	vertices: [a, b, c]
//	edges:
//	  - {from: a, to: b, weight: 1.5}
//	  - {from: b, to: c, weight: 2}
//
// The vertices need only be listed if they have no edges. Unrecognised
// fields are reported as errors.
func ParseYAML(spec []byte) (*Graph, error) {
	var gs graphSpec
	dec := yaml.NewDecoder(bytes.NewReader(spec))
	dec.KnownFields(true)
	if err := dec.Decode(&gs); err != nil && !errors.Is(err, io.EOF) {
		return nil, cmdyaml.ErrorWithSource(spec, err)
	}
	g := New(gs.Directed)
	for _, v := range gs.Vertices {
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: empty vertex name", ErrUnknownVertex)
		}
		g.AddVertex(v)
	}
	for i, e := range gs.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %v: %w", i, err)
		}
	}
	return g, nil
}

// LoadYAML reads a graph from the specified file as per ParseYAML.
func LoadYAML(file string) (*Graph, error) {
	spec, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	g, err := ParseYAML(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return g, nil
}
