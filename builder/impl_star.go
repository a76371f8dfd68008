// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Local index 0 is the center; leaves 1..n-1 are joined to it in order.

package builder

import "github.com/ciroDourado/fleury-s-algorithm/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one center and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		ids := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, ids, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
