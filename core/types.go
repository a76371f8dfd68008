// SPDX-License-Identifier: MIT
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption and the sentinel errors.
//
// Vertex and edge handles are small integers into dense arenas. They stay
// valid for the lifetime of the graph, so a cloned working copy can be
// mutated while the caller keeps using the same handles on the original.

package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates an operation referenced a vertex that does not exist.
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrEdgeNotFound indicates an operation referenced an edge that does not exist
	// or has already been removed.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// VertexID is a stable handle into the vertex arena of a Graph.
type VertexID int

// EdgeID is a stable handle into the edge arena of a Graph.
// Handles are issued in increasing order and never reused, so comparing two
// EdgeIDs compares the insertion order of the edges.
type EdgeID int

// Vertex pairs a stable handle with the caller's payload.
type Vertex[V any] struct {
	// ID is the arena index of this vertex.
	ID VertexID

	// Label is the application payload, e.g. an integer name. Labels need not be unique.
	Label V
}

// Edge is an undirected connection between U and V.
// A self-loop has U == V.
type Edge struct {
	// ID is the arena index of this edge.
	ID EdgeID

	// U and V are the endpoints. Their order carries no meaning.
	U, V VertexID

	// Label is an optional display string such as "1-2".
	Label string
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Other returns the endpoint of e opposite to v.
// For a self-loop it returns v.
func (e Edge) Other(v VertexID) VertexID {
	if e.U == v {
		return e.V
	}

	return e.U
}

// GraphOption configures a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	vertexCap int
	edgeCap   int
}

// WithCapacity preallocates room for the given number of vertices and edges.
// Negative values are ignored.
func WithCapacity(vertices, edges int) GraphOption {
	return func(o *graphOptions) {
		if vertices > 0 {
			o.vertexCap = vertices
		}
		if edges > 0 {
			o.edgeCap = edges
		}
	}
}

// vertexSlot holds a vertex payload and the ordered set of live incident edge IDs.
// A self-loop is stored once.
type vertexSlot[V any] struct {
	label    V
	incident *treeset.Set
}

// edgeSlot holds an edge and whether it has been removed.
type edgeSlot struct {
	edge  Edge
	alive bool
}

// Graph is an undirected graph that permits parallel edges and self-loops.
//
// vertices and edges are dense arenas indexed by VertexID and EdgeID.
// Each vertex keeps its live incident edges in a tree set ordered by EdgeID,
// which is insertion order, so neighbour enumeration is deterministic and
// removal costs O(log d).
// mu guards both arenas; the Graph is safe for concurrent use.
type Graph[V any] struct {
	mu sync.RWMutex

	vertices  []vertexSlot[V]
	edges     []edgeSlot
	liveEdges int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any preallocation requested with WithCapacity.
func NewGraph[V any](opts ...GraphOption) *Graph[V] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[V]{
		vertices: make([]vertexSlot[V], 0, o.vertexCap),
		edges:    make([]edgeSlot, 0, o.edgeCap),
	}
}

// edgeIDComparator orders EdgeIDs ascending for the incidence tree sets.
func edgeIDComparator(a, b interface{}) int {
	return utils.IntComparator(int(a.(EdgeID)), int(b.(EdgeID)))
}

// newIncidence returns an empty incidence set, optionally seeded with ids.
func newIncidence(ids ...interface{}) *treeset.Set {
	return treeset.NewWith(edgeIDComparator, ids...)
}
