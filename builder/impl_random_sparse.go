// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Contract:
//   • n ≥ 1 (ErrTooFewVertices); p ∈ [0,1] (ErrInvalidProbability).
//   • For 0<p<1 an RNG is required (ErrNeedRandSource); p ∈ {0,1} is deterministic.
//   • Trials run over unordered pairs {i,j}, i<j, in (i asc, j asc) order, so a
//     fixed seed always yields the same graph. No loops, no parallel edges.

package builder

import (
	"fmt"

	"github.com/ciroDourado/fleury-s-algorithm/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == probMin:
					keep = false
				case p == probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, ids, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
