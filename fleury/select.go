// SPDX-License-Identifier: MIT

package fleury

import (
	"github.com/pkg/errors"

	"github.com/ciroDourado/fleury-s-algorithm/core"
)

// choose returns the edge to consume at cur on the working graph.
// found is false when cur has no edges left.
func choose[V any](work *core.Graph[V], cur core.VertexID, s Selection) (core.Edge, bool, error) {
	switch s {
	case AvoidBridges:
		return chooseNonBridge(work, cur)
	default:
		return chooseFirst(work, cur)
	}
}

// chooseFirst takes the first neighbour in iteration order and the earliest
// edge joining it to cur.
func chooseFirst[V any](work *core.Graph[V], cur core.VertexID) (core.Edge, bool, error) {
	seq, err := work.Neighbors(cur)
	if err != nil {
		return core.Edge{}, false, err
	}

	for next := range seq {
		id, ok := work.FindEdge(cur, next)
		if !ok {
			return core.Edge{}, false, errors.Wrapf(core.ErrEdgeNotFound, "no edge %d-%d", cur, next)
		}
		e, err := work.Edge(id)
		if err != nil {
			return core.Edge{}, false, err
		}

		return e, true, nil
	}

	return core.Edge{}, false, nil
}

// chooseNonBridge takes the earliest incident edge that is not a bridge.
// A sole remaining edge is taken without testing; if every candidate is a
// bridge the earliest one is taken.
func chooseNonBridge[V any](work *core.Graph[V], cur core.VertexID) (core.Edge, bool, error) {
	edges, err := work.IncidentEdges(cur)
	if err != nil {
		return core.Edge{}, false, err
	}
	switch len(edges) {
	case 0:
		return core.Edge{}, false, nil
	case 1:
		return edges[0], true, nil
	}

	for _, e := range edges {
		bridge, err := work.IsBridge(e.ID)
		if err != nil {
			return core.Edge{}, false, err
		}
		if !bridge {
			return e, true, nil
		}
	}

	return edges[0], true, nil
}
