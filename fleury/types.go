// SPDX-License-Identifier: MIT

package fleury

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/ciroDourado/fleury-s-algorithm/core"
	"github.com/ciroDourado/fleury-s-algorithm/euler"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Build or Apply.
	ErrGraphNil = errors.New("fleury: graph is nil")

	// ErrInfeasible is returned by Apply when the feasibility gate rejects the graph.
	// It is a normal outcome; Build never returns it.
	ErrInfeasible = errors.New("fleury: no Eulerian trail exists")
)

// Selection decides which incident edge the walk consumes next.
type Selection int

const (
	// FirstAvailable always takes the earliest inserted live edge at the
	// current vertex, without testing for bridges. On some Eulerian graphs
	// this strands the walk; Trail.Complete reports it.
	FirstAvailable Selection = iota

	// AvoidBridges is Fleury's rule: take the earliest edge that is not a
	// bridge of the remaining graph, and cross a bridge only when it is the
	// sole option.
	AvoidBridges
)

// String returns the selection name.
func (s Selection) String() string {
	switch s {
	case FirstAvailable:
		return "first-available"
	case AvoidBridges:
		return "avoid-bridges"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// Option configures Build and Apply.
type Option func(*Options)

// Options holds the resolved builder settings.
type Options struct {
	// Selection is the edge choice rule. Default FirstAvailable.
	Selection Selection

	// Policy is the feasibility policy used by Apply. Default euler.PolicyCyclic.
	Policy euler.Policy
}

// DefaultOptions returns FirstAvailable with euler.PolicyCyclic.
func DefaultOptions() Options {
	return Options{Selection: FirstAvailable, Policy: euler.PolicyCyclic}
}

// WithSelection sets the edge choice rule.
func WithSelection(s Selection) Option {
	return func(o *Options) { o.Selection = s }
}

// WithPolicy sets the feasibility policy checked by Apply.
func WithPolicy(p euler.Policy) Option {
	return func(o *Options) { o.Policy = p }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Step is one traversed edge.
type Step[V any] struct {
	From, To           core.VertexID
	FromLabel, ToLabel V
	Edge               core.EdgeID
	EdgeLabel          string
}

// Trail is the ordered walk produced by Build.
type Trail[V any] struct {
	// Start is the vertex the walk began at.
	Start core.VertexID

	// End is the vertex the walk stopped at. Equal to Start for an empty walk.
	End core.VertexID

	// Steps holds one entry per consumed edge, in traversal order.
	Steps []Step[V]

	// Complete reports whether every edge of the working copy was consumed.
	// A false value on a graph that passed the feasibility gate means the
	// walk was stranded; it is not an error.
	Complete bool

	// Remaining is the number of edges left unconsumed.
	Remaining int
}

// Len returns the number of traversed edges.
func (t *Trail[V]) Len() int { return len(t.Steps) }

// Closed reports whether the walk is non-empty and returns to its start.
func (t *Trail[V]) Closed() bool { return len(t.Steps) > 0 && t.Start == t.End }

// Pairs returns the (label(a), label(b)) pair of every step.
func (t *Trail[V]) Pairs() [][2]V {
	out := make([][2]V, len(t.Steps))
	for i, s := range t.Steps {
		out[i] = [2]V{s.FromLabel, s.ToLabel}
	}

	return out
}

// Vertices returns the walk as a vertex sequence: Start followed by the
// target of every step. Its length is Len()+1.
func (t *Trail[V]) Vertices() []core.VertexID {
	out := make([]core.VertexID, 0, len(t.Steps)+1)
	out = append(out, t.Start)
	for _, s := range t.Steps {
		out = append(out, s.To)
	}

	return out
}

// String renders one "a - b" line per step.
func (t *Trail[V]) String() string {
	var sb strings.Builder
	for _, s := range t.Steps {
		fmt.Fprintf(&sb, "%v - %v\n", s.FromLabel, s.ToLabel)
	}

	return sb.String()
}
