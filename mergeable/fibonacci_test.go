// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mergeable_test

import (
	"math/rand"
	"slices"
	"testing"

	"cloudeng.io/heaps/mergeable"
)

func TestMaxRank(t *testing.T) {
	for _, tc := range []struct {
		n, rank int
	}{
		{0, 1},
		{1, 1},
		{2, 3},
		{3, 4},
		{15, 7},
		{1000, 16},
	} {
		if got, want := mergeable.MaxRank(tc.n), tc.rank; got != want {
			t.Errorf("%v: got %v, want %v", tc.n, got, want)
		}
	}
}

// newBinomial returns a Fibonacci heap whose values and keys are 2..16,
// organised as the binomial trees:
//
//	2: {3, 4: {5}, 6: {7, 8: {9}}}
//	10: {11, 12: {13}}
//	14: {15}
//	16
func newBinomial(t *testing.T) (*mergeable.Fibonacci[int, int], map[int]mergeable.Handle[int, int]) {
	h := mergeable.NewFibonacci[int, int](mergeable.WithSlabSize(4))
	handles := map[int]mergeable.Handle[int, int]{}
	for i := 1; i <= 16; i++ {
		handles[i] = h.Insert(i, i)
	}
	if v, err := h.DeleteMin(); err != nil || v != 1 {
		t.Fatalf("got %v, %v", v, err)
	}
	verify(t, h)
	delete(handles, 1)
	return h, handles
}

func TestFibonacciConsolidate(t *testing.T) {
	h, handles := newBinomial(t)
	if got, want := h.Trees(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, v := range []int{2, 10, 14, 16} {
		if handles[v].HasParent() {
			t.Errorf("%v: should be a root", v)
		}
	}
	for _, v := range []int{3, 5, 7, 9, 11, 13, 15, 16} {
		if handles[v].HasChildren() {
			t.Errorf("%v: should be a leaf", v)
		}
	}
	for _, v := range []int{3, 4, 5, 6, 7, 8, 9, 11, 12, 13, 15} {
		if !handles[v].HasParent() {
			t.Errorf("%v: should have a parent", v)
		}
	}
}

func TestFibonacciCascadingCut(t *testing.T) {
	h, handles := newBinomial(t)

	// Cutting 7 marks 6.
	if err := h.DecreaseKey(handles[7], -1); err != nil {
		t.Fatal(err)
	}
	verify(t, h)
	expectMin(t, h, 7)
	if handles[7].HasParent() || !mergeable.Marked(handles[6]) {
		t.Errorf("7 should be a root and 6 marked")
	}

	// Cutting 9 marks 8.
	if err := h.DecreaseKey(handles[9], 0); err != nil {
		t.Fatal(err)
	}
	verify(t, h)
	expectMin(t, h, 7)
	if handles[9].HasParent() || !mergeable.Marked(handles[8]) {
		t.Errorf("9 should be a root and 8 marked")
	}
	if got, want := h.Trees(), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Cutting 8, which is marked, cascades to 6, which is also marked,
	// and stops at 2 since it is a root.
	if err := h.DecreaseKey(handles[8], -2); err != nil {
		t.Fatal(err)
	}
	verify(t, h)
	expectMin(t, h, 8)
	for _, v := range []int{6, 8} {
		if handles[v].HasParent() || mergeable.Marked(handles[v]) {
			t.Errorf("%v: should be an unmarked root", v)
		}
		if handles[v].HasChildren() {
			t.Errorf("%v: should have no children", v)
		}
	}
	if got, want := h.Trees(), 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if mergeable.Marked(handles[2]) || !handles[2].HasChildren() {
		t.Errorf("2 should be an unmarked root with children")
	}

	// Cutting 5 marks 4.
	if err := h.DecreaseKey(handles[5], -3); err != nil {
		t.Fatal(err)
	}
	verify(t, h)
	if !mergeable.Marked(handles[4]) || !handles[4].HasParent() {
		t.Errorf("4 should be a marked child")
	}
	if got, want := drain(t, h), []int{5, 8, 7, 9, 2, 3, 4, 6, 10, 11, 12, 13, 14, 15, 16}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFibonacciRemoveCascades(t *testing.T) {
	h, handles := newBinomial(t)
	for _, v := range []int{7, 9} {
		if _, err := h.Remove(handles[v]); err != nil {
			t.Fatal(err)
		}
		verify(t, h)
	}
	if got, want := h.Len(), 13; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	expectMin(t, h, 2)
}

func TestFibonacciTreeCount(t *testing.T) {
	rnd := rand.New(rand.NewSource(0)) // #nosec: G404
	h := mergeable.NewFibonacci[int, int]()
	var handles []mergeable.Handle[int, int]
	for i := range 5000 {
		handles = append(handles, h.Insert(i, rnd.Intn(100000)))
	}
	for h.Len() > 0 {
		if _, err := h.DeleteMin(); err != nil {
			t.Fatal(err)
		}
		if n := h.Len(); n > 0 && h.Trees() > mergeable.MaxRank(n) {
			t.Fatalf("%v entries in %v trees, more than %v", n, h.Trees(), mergeable.MaxRank(n))
		}
		for range 3 {
			hd := handles[rnd.Intn(len(handles))]
			if !hd.Valid() {
				continue
			}
			if err := h.DecreaseKey(hd, hd.Key()-rnd.Intn(1000)); err != nil {
				t.Fatal(err)
			}
		}
	}
	verify(t, h)
}
