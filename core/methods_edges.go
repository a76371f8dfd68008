// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle (AddEdge, RemoveEdge) and edge catalog queries.
// Determinism:
//   - EdgeIDs are issued in increasing order and never reused.
//   - Edges() returns live edges ordered by EdgeID asc.
// Concurrency:
//   - Mutators take the write lock; queries take the read lock.

package core

import "fmt"

// AddEdge inserts an undirected edge between u and v and returns its handle.
//
// Implementation:
//   - Stage 1: Validate both endpoints (ErrInvalidVertex).
//   - Stage 2: Append the edge to the arena under the next EdgeID.
//   - Stage 3: Record the EdgeID in the incidence set of u and, unless the edge
//     is a self-loop, of v.
//
// Behavior highlights:
//   - Self-loops (u == v) are accepted and count twice toward Degree(u).
//   - Parallel edges are accepted; each one is a separate EdgeID.
//
// Errors:
//   - ErrInvalidVertex: if either endpoint does not exist.
//
// Complexity:
//   - Time O(log d) for the incidence insert, Space O(1) amortized.
func (g *Graph[V]) AddEdge(u, v VertexID, label string) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Stage 1: both endpoints must already exist.
	if !g.hasVertexLocked(u) {
		return 0, fmt.Errorf("core: AddEdge(%d,%d): endpoint %d: %w", u, v, u, ErrInvalidVertex)
	}
	if !g.hasVertexLocked(v) {
		return 0, fmt.Errorf("core: AddEdge(%d,%d): endpoint %d: %w", u, v, v, ErrInvalidVertex)
	}

	// Stage 2: issue the next handle.
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edgeSlot{
		edge:  Edge{ID: id, U: u, V: v, Label: label},
		alive: true,
	})
	g.liveEdges++

	// Stage 3: incidence on both sides (a loop is stored once).
	g.vertices[u].incident.Add(id)
	if u != v {
		g.vertices[v].incident.Add(id)
	}

	return id, nil
}

// RemoveEdge deletes exactly one edge instance.
// Parallel edges between the same endpoints are untouched.
//
// Returns ErrEdgeNotFound if id was already removed or never issued.
// Complexity: O(log d).
func (g *Graph[V]) RemoveEdge(id EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasEdgeLocked(id) {
		return fmt.Errorf("core: RemoveEdge(%d): %w", id, ErrEdgeNotFound)
	}

	slot := &g.edges[id]
	slot.alive = false
	g.liveEdges--
	g.vertices[slot.edge.U].incident.Remove(id)
	if !slot.edge.IsLoop() {
		g.vertices[slot.edge.V].incident.Remove(id)
	}

	return nil
}

// HasEdge reports whether id refers to a live edge.
// Complexity: O(1).
func (g *Graph[V]) HasEdge(id EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(id)
}

// Edge returns the live edge stored under id.
// Returns ErrEdgeNotFound if id is stale or unknown.
func (g *Graph[V]) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasEdgeLocked(id) {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[id].edge, nil
}

// Edges returns a copy of every live edge ordered by EdgeID (insertion order).
// Complexity: O(E_total) where E_total counts removed slots too.
func (g *Graph[V]) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.liveEdges)
	for _, s := range g.edges {
		if s.alive {
			out = append(out, s.edge)
		}
	}

	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveEdges
}

func (g *Graph[V]) hasEdgeLocked(id EdgeID) bool {
	return id >= 0 && int(id) < len(g.edges) && g.edges[id].alive
}
