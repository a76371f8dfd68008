// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core graph tests.

package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ciroDourado/fleury-s-algorithm/core"
)

// Common edge labels used across core tests.
const (
	Label12 = "1-2"
	Label23 = "2-3"
	Label31 = "3-1"
	Label34 = "3-4"
	LabelL  = "loop"
)

// newIntGraph adds one vertex per label and returns the graph and the handles
// in label order.
func newIntGraph(t *testing.T, labels ...int) (*core.Graph[int], []core.VertexID) {
	t.Helper()
	g := core.NewGraph[int](core.WithCapacity(len(labels), 0))
	ids := make([]core.VertexID, len(labels))
	for i, l := range labels {
		ids[i] = g.AddVertex(l)
	}

	return g, ids
}

// mustEdge adds u–v and fails the test on error.
func mustEdge(t *testing.T, g *core.Graph[int], u, v core.VertexID, label string) core.EdgeID {
	t.Helper()
	id, err := g.AddEdge(u, v, label)
	require.NoError(t, err)

	return id
}

// triangle returns 1–2–3–1.
func triangle(t *testing.T) (*core.Graph[int], []core.VertexID) {
	t.Helper()
	g, v := newIntGraph(t, 1, 2, 3)
	mustEdge(t, g, v[0], v[1], Label12)
	mustEdge(t, g, v[1], v[2], Label23)
	mustEdge(t, g, v[2], v[0], Label31)

	return g, v
}

// neighbors drains the neighbour sequence of v.
func neighbors(t *testing.T, g *core.Graph[int], v core.VertexID) []core.VertexID {
	t.Helper()
	seq, err := g.Neighbors(v)
	require.NoError(t, err)

	return slices.Collect(seq)
}
