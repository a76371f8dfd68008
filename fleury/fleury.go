// SPDX-License-Identifier: MIT
// Package fleury constructs Eulerian trails and circuits with Fleury's
// algorithm on an independent copy of a core.Graph.
//
// The walk starts at the lower-degree odd vertex when exactly two odd
// vertices exist, and at the first vertex otherwise. Each step consumes one
// edge at the current vertex, chosen by the configured Selection, until the
// current vertex has no edges left.
//
// Complexity:
//
//   - FirstAvailable: O(E·d) with d the maximum degree.
//   - AvoidBridges:   O(E·d·(V+E)), one reachability query per candidate edge.
package fleury

import (
	"github.com/pkg/errors"

	"github.com/ciroDourado/fleury-s-algorithm/core"
	"github.com/ciroDourado/fleury-s-algorithm/euler"
)

// StartVertex returns the vertex the walk begins at:
// the lowest-degree odd vertex if exactly two odd vertices exist,
// otherwise the first vertex in iteration order.
// The boolean is false for a graph without vertices.
func StartVertex[V any](g *core.Graph[V]) (core.VertexID, bool) {
	if g == nil || g.VertexCount() == 0 {
		return 0, false
	}
	if euler.CountOddDegree(g) == 2 {
		if v, err := euler.LowestOddDegreeVertex(g); err == nil {
			return v, true
		}
	}

	return g.Vertices()[0], true
}

// Build walks g and returns the trail. g itself is never mutated.
//
// Implementation:
//   - Stage 1: Clone g into a working copy owned by this call.
//   - Stage 2: Pick the start vertex (StartVertex).
//   - Stage 3: Repeat at most EdgeCount times: choose an incident edge per
//     Selection, remove it from the copy, record the step, move across it.
//     Stop when the current vertex has no edges left.
//   - Stage 4: Record End, Remaining and Complete.
//
// Build does not check feasibility. On a graph without an Eulerian trail
// the walk ends early and Trail.Complete is false; use Apply to gate first.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - core.ErrEdgeNotFound (wrapped): the working copy lost an edge it had
//     just reported. This signals broken bookkeeping and should not happen.
func Build[V any](g *core.Graph[V], opts ...Option) (*Trail[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)

	// Stage 1: exclusive working copy.
	work := g.Clone()
	total := work.EdgeCount()

	// Stage 2: start vertex.
	start, ok := StartVertex(work)
	if !ok {
		return &Trail[V]{Complete: total == 0, Remaining: total}, nil
	}
	tr := &Trail[V]{Start: start, Steps: make([]Step[V], 0, total)}

	// Stage 3: consume edges; the bound guards against a selector bug.
	cur := start
	for step := 0; step < total; step++ {
		e, found, err := choose(work, cur, o.Selection)
		if err != nil {
			return nil, errors.Wrapf(err, "fleury: step %d at vertex %d", step, cur)
		}
		if !found {
			break
		}
		if err = work.RemoveEdge(e.ID); err != nil {
			return nil, errors.Wrapf(err, "fleury: step %d consuming edge %d", step, e.ID)
		}
		next := e.Other(cur)
		tr.Steps = append(tr.Steps, Step[V]{
			From:      cur,
			To:        next,
			FromLabel: work.Label(cur),
			ToLabel:   work.Label(next),
			Edge:      e.ID,
			EdgeLabel: e.Label,
		})
		cur = next
	}

	// Stage 4: outcome.
	tr.End = cur
	tr.Remaining = work.EdgeCount()
	tr.Complete = tr.Remaining == 0

	return tr, nil
}

// Apply gates Build behind euler.HasEulerianTrail using the configured Policy.
// It returns ErrInfeasible (wrapped with the odd-vertex count) when the gate
// rejects g; the caller decides how to surface it.
func Apply[V any](g *core.Graph[V], opts ...Option) (*Trail[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)
	if !euler.HasEulerianTrail(g, euler.WithPolicy(o.Policy)) {
		return nil, errors.Wrapf(ErrInfeasible, "%d odd-degree vertices, policy %s",
			euler.CountOddDegree(g), o.Policy)
	}

	return Build(g, opts...)
}
