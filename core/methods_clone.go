// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copy of a graph for independent mutation.
// Determinism:
//   - The clone keeps every VertexID and EdgeID of the source, including the
//     positions of already removed edges, so handles mean the same thing on both.
// Concurrency:
//   - Read lock on the source only; the clone is not shared until returned.

package core

// Clone returns an independent deep copy of g.
//
// Vertex labels are copied by value; if V is a pointer or reference type the
// pointees are shared. Incidence sets and the edge arena are fresh, so
// removing edges from the clone never affects g and vice versa.
//
// Complexity: O(V + E log d).
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[V]{
		vertices:  make([]vertexSlot[V], len(g.vertices)),
		edges:     make([]edgeSlot, len(g.edges)),
		liveEdges: g.liveEdges,
	}
	copy(clone.edges, g.edges)
	for i, s := range g.vertices {
		clone.vertices[i] = vertexSlot[V]{
			label:    s.label,
			incident: newIncidence(s.incident.Values()...),
		}
	}

	return clone
}
