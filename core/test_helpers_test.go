// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for campusnav/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only so failures print operation labels, not diffs.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/campusnav/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2   = 2.0
	Weight3   = 3.0
	Weight4p5 = 4.5
)

// NewGraphABCD RETURNS a string graph with nodes A..D and no edges.
func NewGraphABCD(t *testing.T) *core.Graph[string] {
	t.Helper()

	g := core.NewStringGraph()
	for _, id := range []string{NodeA, NodeB, NodeC, NodeD} {
		added, err := g.AddNode(id)
		MustNoError(t, err, "AddNode("+id+")")
		MustTrue(t, added, "AddNode("+id+") added")
	}

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: want true; got false", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: want false; got true", op)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualFloat FAILS the test if got != want (exact; tests use representable weights).
func MustEqualFloat(t *testing.T, got, want float64, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %v; want %v", op, got, want)
}

// MustEqualStrings FAILS the test if the slices differ in length or any position.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %v; want %v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v; want %v (first diff at %d)", op, got, want, i)
		}
	}
}
