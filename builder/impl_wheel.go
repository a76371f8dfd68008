// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Local index 0 is the hub; rim 1..n-1 forms a cycle emitted first,
//     spokes hub - i follow in ascending i.
//   • Rim vertices have degree 3, so any wheel has n-1 ≥ 3 odd vertices.

package builder

import "github.com/ciroDourado/fleury-s-algorithm/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		ids := addVertices(g, cfg, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := addEdge(g, cfg, methodWheel, ids, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodWheel, ids, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
