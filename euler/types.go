// SPDX-License-Identifier: MIT
// Package euler defines the feasibility policy, options and report types for
// Eulerian analysis of a core.Graph.
package euler

import (
	"errors"
	"fmt"

	"github.com/ciroDourado/fleury-s-algorithm/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to an analyzer query.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrNoOddVertices is returned by LowestOddDegreeVertex when every vertex has even degree.
	// Callers should guard with CountOddDegree first.
	ErrNoOddVertices = errors.New("euler: no odd-degree vertices")
)

// Policy selects the structural requirement paired with the odd-degree count.
type Policy int

const (
	// PolicyCyclic requires the graph to contain a cycle. It is a proxy for
	// connectivity: it rejects a simple path (acyclic, yet a valid trail) and
	// accepts disjoint cycles (cyclic, yet not traversable in one walk).
	PolicyCyclic Policy = iota

	// PolicyConnected requires all vertices of positive degree to lie in one
	// connected component. This is the textbook Eulerian criterion; a graph
	// with no edges passes it trivially.
	PolicyConnected
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyCyclic:
		return "cyclic"
	case PolicyConnected:
		return "connected"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Kind classifies the verdict.
type Kind int

const (
	// KindNone means no Eulerian trail exists under the chosen policy.
	KindNone Kind = iota
	// KindCircuit means every degree is even: the walk returns to its start.
	KindCircuit
	// KindTrail means exactly two vertices have odd degree: the walk joins them.
	KindTrail
)

// String returns the verdict name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCircuit:
		return "circuit"
	case KindTrail:
		return "trail"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Option configures an analysis.
type Option func(*Options)

// Options holds the resolved analysis settings.
type Options struct {
	// Policy is the structural requirement. Default PolicyCyclic.
	Policy Policy
}

// DefaultOptions returns Options with PolicyCyclic.
func DefaultOptions() Options {
	return Options{Policy: PolicyCyclic}
}

// WithPolicy sets the structural requirement.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Report is a diagnostic snapshot of one analysis.
type Report struct {
	// Kind is the verdict under Policy.
	Kind Kind

	// Policy is the structural requirement that produced Kind.
	Policy Policy

	// OddVertices lists odd-degree vertices in vertex order.
	OddVertices []core.VertexID

	// Cyclic reports whether the live edges contain a cycle.
	Cyclic bool

	// Connected reports whether all non-isolated vertices share one component.
	Connected bool

	// Components counts connected components holding at least one edge.
	Components int

	// Edges is the number of live edges.
	Edges int
}

// Feasible reports whether an Eulerian trail or circuit exists.
func (r Report) Feasible() bool { return r.Kind != KindNone }
