// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle and vertex catalog queries.
// Determinism:
//   - Vertices() returns handles in creation order.
// Concurrency:
//   - AddVertex takes the write lock; queries take the read lock.

package core

// AddVertex inserts a new vertex carrying label and returns its handle.
//
// Labels are payload only: two vertices may share a label and remain distinct.
// The returned handle is valid for the lifetime of g and of every clone of g.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(label V) VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, vertexSlot[V]{label: label, incident: newIncidence()})

	return id
}

// HasVertex reports whether id refers to a vertex of g.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(id)
}

// Vertex returns the vertex stored under id.
// Returns ErrInvalidVertex if id is unknown.
func (g *Graph[V]) Vertex(id VertexID) (Vertex[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(id) {
		return Vertex[V]{}, ErrInvalidVertex
	}

	return Vertex[V]{ID: id, Label: g.vertices[id].label}, nil
}

// Label returns the payload of vertex id, or the zero value if id is unknown.
// Use Vertex when the caller needs to distinguish the two cases.
func (g *Graph[V]) Label(id VertexID) V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var zero V
	if !g.hasVertexLocked(id) {
		return zero
	}

	return g.vertices[id].label
}

// Vertices returns every vertex handle in creation order.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]VertexID, len(g.vertices))
	for i := range g.vertices {
		out[i] = VertexID(i)
	}

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge endpoints incident to v.
// A self-loop contributes 2, each parallel edge contributes separately.
//
// Returns ErrInvalidVertex if v is unknown.
// Complexity: O(d).
func (g *Graph[V]) Degree(v VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return 0, ErrInvalidVertex
	}

	return g.degreeLocked(v), nil
}

// hasVertexLocked reports membership; caller holds mu.
func (g *Graph[V]) hasVertexLocked(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// degreeLocked counts endpoints at v; caller holds mu and v is valid.
func (g *Graph[V]) degreeLocked(v VertexID) int {
	deg := 0
	it := g.vertices[v].incident.Iterator()
	for it.Next() {
		if g.edges[it.Value().(EdgeID)].edge.IsLoop() {
			deg += 2
			continue
		}
		deg++
	}

	return deg
}
