// SPDX-License-Identifier: MIT

package converters

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/ciroDourado/fleury-s-algorithm/core"
)

// ToGonum exports g into a new gonum multigraph.
//
// Every vertex becomes a multi.Node with ID == VertexID, isolated ones
// included. Every live edge becomes its own multi.Line, so parallel edges
// and self-loops survive the conversion.
//
// Complexity: O(V + E).
func ToGonum[V any](g *core.Graph[V]) *multi.UndirectedGraph {
	out := multi.NewUndirectedGraph()
	if g == nil {
		return out
	}
	for _, v := range g.Vertices() {
		out.AddNode(multi.Node(v))
	}
	for _, e := range g.Edges() {
		out.SetLine(out.NewLine(multi.Node(e.U), multi.Node(e.V)))
	}

	return out
}

// EdgeComponents returns the connected components of g that contain at least
// one edge. Isolated vertices are dropped.
//
// Each component is sorted by VertexID and components are ordered by their
// smallest vertex, so the result is deterministic although gonum walks nodes
// in map order.
//
// Complexity: O(V log V + E).
func EdgeComponents[V any](g *core.Graph[V]) [][]core.VertexID {
	if g == nil {
		return nil
	}

	var out [][]core.VertexID
	for _, comp := range topo.ConnectedComponents(ToGonum(g)) {
		ids := make([]core.VertexID, 0, len(comp))
		touched := false
		for _, n := range comp {
			id := core.VertexID(n.ID())
			ids = append(ids, id)
			if d, err := g.Degree(id); err == nil && d > 0 {
				touched = true
			}
		}
		if !touched {
			continue
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []core.VertexID) int { return cmp.Compare(a[0], b[0]) })

	return out
}
