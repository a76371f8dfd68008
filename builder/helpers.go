// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go - shared vertex/edge emission for constructors.

package builder

import (
	"fmt"

	"github.com/ciroDourado/fleury-s-algorithm/core"
)

// addVertices appends n vertices labelled after the vertices already in g.
// Returns the handles in local index order 0..n-1.
// Complexity: O(n).
func addVertices(g *core.Graph[int], cfg builderConfig, n int) []core.VertexID {
	base := g.VertexCount()
	ids := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddVertex(cfg.labelFn(base + i))
	}

	return ids
}

// addEdge joins local indices i and j with a label derived from their payloads.
func addEdge(g *core.Graph[int], cfg builderConfig, method string, ids []core.VertexID, i, j int) error {
	u, v := ids[i], ids[j]
	label := cfg.edgeLabelFn(g.Label(u), g.Label(v))
	if _, err := g.AddEdge(u, v, label); err != nil {
		return fmt.Errorf("%s: AddEdge(%s): %w", method, label, err)
	}

	return nil
}

// validateMin returns ErrTooFewVertices with context when got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}
