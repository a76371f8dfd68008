// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits edges i - j for i<j in lexicographic (i, j) order.
//   • K_n is Eulerian exactly when n is odd.

package builder

import "github.com/ciroDourado/fleury-s-algorithm/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, ids, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
