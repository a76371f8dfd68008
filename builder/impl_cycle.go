// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i - (i+1)%n for i=0..n-1.
//   • Every vertex ends with degree 2: an Eulerian circuit by construction.

package builder

import "github.com/ciroDourado/fleury-s-algorithm/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, ids, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
