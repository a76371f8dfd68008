// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighbourhood APIs (Neighbors, IncidentEdges, FindEdge).
// Determinism:
//   - All three walk the incidence set of a vertex in EdgeID asc, i.e. the
//     order in which the edges were inserted.
// Concurrency:
//   - Each call snapshots the incidence set under the read lock; the returned
//     sequences and slices never alias internal storage.

package core

import "iter"

// Neighbors returns the vertices adjacent to v, one entry per live incident edge.
//
// Neighbourhood policy:
//   - Parallel edges yield the same neighbour once per edge.
//   - A self-loop yields v itself once (Degree still counts it twice).
//   - Order follows edge insertion order.
//
// Implementation:
//   - Stage 1: Validate v under the read lock (ErrInvalidVertex).
//   - Stage 2: Return a sequence that, on each range, snapshots the incidence
//     set and yields the opposite endpoint of every edge.
//
// Behavior highlights:
//   - The sequence is lazy: it reflects the graph at the moment it is ranged
//     over, not at the moment Neighbors was called.
//   - Restartable and finite; ranging never mutates g.
//   - The lock is not held while yielding, so the loop body may mutate g.
//
// Complexity:
//   - Time O(d) per full iteration, Space O(d) for the snapshot.
func (g *Graph[V]) Neighbors(v VertexID) (iter.Seq[VertexID], error) {
	if !g.HasVertex(v) {
		return nil, ErrInvalidVertex
	}

	return func(yield func(VertexID) bool) {
		for _, e := range g.incidentSnapshot(v) {
			if !yield(e.Other(v)) {
				return
			}
		}
	}, nil
}

// IncidentEdges returns the live edges touching v in insertion order.
// A self-loop appears once.
//
// Returns ErrInvalidVertex if v is unknown.
// Complexity: O(d).
func (g *Graph[V]) IncidentEdges(v VertexID) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, ErrInvalidVertex
	}

	return g.incidentSnapshot(v), nil
}

// FindEdge returns one live edge joining u and v: the earliest inserted one.
// The boolean is false when no such edge exists or either vertex is unknown.
// Complexity: O(d(u)).
func (g *Graph[V]) FindEdge(u, v VertexID) (EdgeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(u) || !g.hasVertexLocked(v) {
		return 0, false
	}

	it := g.vertices[u].incident.Iterator()
	for it.Next() {
		id := it.Value().(EdgeID)
		if g.edges[id].edge.Other(u) == v {
			return id, true
		}
	}

	return 0, false
}

// incidentSnapshot copies the incident edges of v under the read lock.
func (g *Graph[V]) incidentSnapshot(v VertexID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return nil
	}
	set := g.vertices[v].incident
	out := make([]Edge, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, g.edges[it.Value().(EdgeID)].edge)
	}

	return out
}
