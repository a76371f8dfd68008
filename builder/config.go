// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn     = oneBased        (1, 2, 3, ...)
//   • edgeLabelFn = dashLabel       ("1-2")
//   • rng         = nil             (pure/deterministic unless seeded)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// labelFn maps a graph-wide vertex index to its payload.
	labelFn func(int) int
	// edgeLabelFn renders the display label of an edge from its endpoint payloads.
	edgeLabelFn func(a, b int) string
	// rng for stochastic constructors; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:     oneBased,
		edgeLabelFn: dashLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// oneBased numbers vertices 1, 2, 3, ... like the hand-drawn examples.
func oneBased(i int) int { return i + 1 }

// dashLabel renders "a-b".
func dashLabel(a, b int) string {
	return strconv.Itoa(a) + "-" + strconv.Itoa(b)
}
