// SPDX-License-Identifier: MIT
// File: connectivity.go
// Role: Structural queries over live edges: reachability, connectivity,
// cyclicity and bridge detection.
// Determinism:
//   - BFS expands vertices in incidence order; results do not depend on map order.
// Concurrency:
//   - Every query holds the read lock for its whole run.

package core

import "fmt"

// noEdge is an EdgeID never issued by AddEdge; used when no edge is skipped.
const noEdge EdgeID = -1

// Reachable returns the set of vertices reachable from `from` over live edges,
// `from` included.
//
// Returns ErrInvalidVertex if from is unknown.
// Complexity: O(V + E).
func (g *Graph[V]) Reachable(from VertexID) (map[VertexID]bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(from) {
		return nil, ErrInvalidVertex
	}
	seen := g.reachLocked(from, noEdge)
	out := make(map[VertexID]bool)
	for i, ok := range seen {
		if ok {
			out[VertexID(i)] = true
		}
	}

	return out, nil
}

// IsConnected reports whether all vertices of positive degree lie in one
// connected component.
//
// Isolated vertices are ignored, so a graph with no edges at all counts as
// connected. This is the connectivity notion of the Eulerian criterion.
//
// Complexity: O(V + E).
func (g *Graph[V]) IsConnected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// 1) Pick the first vertex that touches an edge.
	root := VertexID(-1)
	for i, s := range g.vertices {
		if !s.incident.Empty() {
			root = VertexID(i)
			break
		}
	}
	if root < 0 {
		return true
	}

	// 2) Every other vertex with an edge must be reached from it.
	seen := g.reachLocked(root, noEdge)
	for i, s := range g.vertices {
		if !s.incident.Empty() && !seen[i] {
			return false
		}
	}

	return true
}

// IsCyclic reports whether the live edges contain a cycle.
//
// Edges are fed in EdgeID order into a disjoint-set forest (path compression,
// union by rank); the first edge whose endpoints already share a root closes
// a cycle. A self-loop and a pair of parallel edges are both cycles.
//
// Complexity: O(E·α(V)).
func (g *Graph[V]) IsCyclic() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	parent := make([]int, len(g.vertices))
	rank := make([]int, len(g.vertices))
	for i := range parent {
		parent[i] = i
	}

	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	for _, s := range g.edges {
		if !s.alive {
			continue
		}
		ru, rv := find(int(s.edge.U)), find(int(s.edge.V))
		if ru == rv {
			return true
		}
		// Attach smaller-rank tree under larger-rank root.
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	return false
}

// IsBridge reports whether removing edge id would disconnect its endpoints.
//
// The edge is not actually removed: reachability from one endpoint is
// computed while ignoring id. A self-loop is never a bridge, and an edge with
// a parallel twin is never a bridge either.
//
// Returns ErrEdgeNotFound if id is stale or unknown.
// Complexity: O(V + E).
func (g *Graph[V]) IsBridge(id EdgeID) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasEdgeLocked(id) {
		return false, fmt.Errorf("core: IsBridge(%d): %w", id, ErrEdgeNotFound)
	}
	e := g.edges[id].edge
	if e.IsLoop() {
		return false, nil
	}

	return !g.reachLocked(e.U, id)[e.V], nil
}

// reachLocked runs BFS from start over live edges other than skip.
// Caller holds mu and start is valid.
func (g *Graph[V]) reachLocked(start VertexID, skip EdgeID) []bool {
	seen := make([]bool, len(g.vertices))
	queue := make([]VertexID, 0, len(g.vertices))
	seen[start] = true
	queue = append(queue, start)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		it := g.vertices[u].incident.Iterator()
		for it.Next() {
			eid := it.Value().(EdgeID)
			if eid == skip {
				continue
			}
			w := g.edges[eid].edge.Other(u)
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}

	return seen
}
