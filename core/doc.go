// SPDX-License-Identifier: MIT
// Package core provides the undirected graph model behind the Eulerian
// analyzer and the Fleury trail builder.
//
// The Graph G = (V,E) supports:
//
//   - Arbitrary vertex payloads through a type parameter (Graph[int], Graph[string], ...)
//   - Parallel edges: each AddEdge call creates a distinct EdgeID
//   - Self-loops: counted twice by Degree, listed once by Neighbors
//   - Stable integer handles (arena + index), valid across Clone
//   - Ordered incidence sets per vertex, so neighbour enumeration follows
//     edge insertion order and removal is O(log d)
//   - A single sync.RWMutex guarding both arenas
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label V) VertexID                     // O(1)
//	HasVertex(id VertexID) bool                     // O(1)
//	Vertex(id VertexID) (Vertex[V], error)          // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v VertexID, label string) (EdgeID, error) // O(log d)
//	RemoveEdge(id EdgeID) error                          // O(log d)
//	HasEdge(id EdgeID) bool                              // O(1)
//
//	// Query
//	Degree(v VertexID) (int, error)                      // O(d), loops count twice
//	Neighbors(v VertexID) (iter.Seq[VertexID], error)    // lazy, insertion order
//	IncidentEdges(v VertexID) ([]Edge, error)            // O(d)
//	FindEdge(u, v VertexID) (EdgeID, bool)               // O(d(u))
//	Vertices() []VertexID / Edges() []Edge
//
//	// Structure
//	IsConnected() bool                                   // non-isolated vertices only
//	IsCyclic() bool                                      // union-find
//	Reachable(from VertexID) (map[VertexID]bool, error)  // BFS
//	IsBridge(id EdgeID) (bool, error)                    // BFS ignoring id
//
//	// Cloning
//	Clone() *Graph[V]                                    // deep, handles preserved
//
// Errors:
//
//	ErrInvalidVertex – unknown vertex handle
//	ErrEdgeNotFound  – stale or unknown edge handle
package core
