// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_edgelist.go - EdgeList(n, pairs) and the fixed Demo() graph.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Every pair must satisfy 0 ≤ i,j < n (else ErrBadEdge). i == j makes a
//     self-loop; repeated pairs make parallel edges.
//   • Edges are emitted in the order given.

package builder

import (
	"fmt"

	"github.com/ciroDourado/fleury-s-algorithm/core"
)

const (
	methodEdgeList   = "EdgeList"
	minEdgeListNodes = 1
)

// demoPairs is the six-vertex graph used by the command line by default:
// 1-2, 1-3, 1-4, 1-5, 1-6, 2-3, 2-5, 4-6 with zero-based indices.
var demoPairs = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
	{1, 2}, {1, 4}, {3, 5},
}

// demoVertices is the vertex count of Demo.
const demoVertices = 6

// EdgeList returns a Constructor that adds n vertices and one edge per pair
// of local indices.
// Complexity: O(n + len(pairs)).
func EdgeList(n int, pairs [][2]int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if err := validateMin(methodEdgeList, n, minEdgeListNodes); err != nil {
			return err
		}
		// Validate every pair before touching g.
		for k, p := range pairs {
			if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
				return fmt.Errorf("%s: pair %d (%d,%d) with n=%d: %w", methodEdgeList, k, p[0], p[1], n, ErrBadEdge)
			}
		}
		ids := addVertices(g, cfg, n)
		for _, p := range pairs {
			if err := addEdge(g, cfg, methodEdgeList, ids, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Demo returns a Constructor for the fixed six-vertex example graph.
// Degrees with default labels are 1→5, 2→3 and 2 for every other vertex:
// two odd vertices, so the graph has an open trail starting at 2.
func Demo() Constructor {
	return EdgeList(demoVertices, demoPairs)
}
