// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i - i+1 for i=0..n-2.
//   • The two ends have degree 1: an open Eulerian trail, but acyclic.

package builder

import "github.com/ciroDourado/fleury-s-algorithm/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, ids, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
