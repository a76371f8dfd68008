// SPDX-License-Identifier: MIT

package euler

import (
	"github.com/ciroDourado/fleury-s-algorithm/converters"
	"github.com/ciroDourado/fleury-s-algorithm/core"
)

// OddDegreeVertices returns every vertex of odd degree, in vertex order.
// A nil graph has none.
// Complexity: O(V + E).
func OddDegreeVertices[V any](g *core.Graph[V]) []core.VertexID {
	if g == nil {
		return nil
	}

	var out []core.VertexID
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		if err != nil {
			continue
		}
		if d%2 != 0 {
			out = append(out, v)
		}
	}

	return out
}

// CountOddDegree returns len(OddDegreeVertices(g)).
// By the handshake lemma the result is always even.
func CountOddDegree[V any](g *core.Graph[V]) int {
	return len(OddDegreeVertices(g))
}

// LowestOddDegreeVertex returns the odd-degree vertex of minimum degree.
// Ties go to the vertex that comes first in vertex order.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrNoOddVertices: every vertex has even degree.
//
// Complexity: O(V + E).
func LowestOddDegreeVertex[V any](g *core.Graph[V]) (core.VertexID, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	odd := OddDegreeVertices(g)
	if len(odd) == 0 {
		return 0, ErrNoOddVertices
	}

	best := odd[0]
	bestDeg, _ := g.Degree(best)
	for _, v := range odd[1:] {
		// Strict comparison keeps the earliest vertex on ties.
		if d, _ := g.Degree(v); d < bestDeg {
			best, bestDeg = v, d
		}
	}

	return best, nil
}

// HasEulerianTrail reports whether g admits an Eulerian trail or circuit.
//
// The verdict is: structural requirement (see Policy) AND the number of
// odd-degree vertices is exactly 0 (circuit) or exactly 2 (open trail).
// Under the default PolicyCyclic the structural requirement is "contains a
// cycle"; pass WithPolicy(PolicyConnected) for the textbook criterion.
//
// Complexity: O(V + E·α(V)).
func HasEulerianTrail[V any](g *core.Graph[V], opts ...Option) bool {
	if g == nil {
		return false
	}
	o := Resolve(opts...)

	return classify(structural(g, o.Policy), CountOddDegree(g)) != KindNone
}

// Analyze returns a full diagnostic Report for g.
//
// Both structural checks are always computed so the report can explain a
// verdict under either policy; Kind uses only the configured one.
// Components is computed through gonum's connected components.
//
// Complexity: O(V log V + E).
func Analyze[V any](g *core.Graph[V], opts ...Option) Report {
	o := Resolve(opts...)
	r := Report{Policy: o.Policy}
	if g == nil {
		return r
	}

	r.OddVertices = OddDegreeVertices(g)
	r.Cyclic = g.IsCyclic()
	r.Connected = g.IsConnected()
	r.Components = len(converters.EdgeComponents(g))
	r.Edges = g.EdgeCount()

	ok := r.Cyclic
	if o.Policy == PolicyConnected {
		ok = r.Connected
	}
	r.Kind = classify(ok, len(r.OddVertices))

	return r
}

// structural evaluates the policy's structural requirement on g.
func structural[V any](g *core.Graph[V], p Policy) bool {
	if p == PolicyConnected {
		return g.IsConnected()
	}

	return g.IsCyclic()
}

// classify maps the structural check and odd count to a Kind.
func classify(structuralOK bool, odd int) Kind {
	if !structuralOK {
		return KindNone
	}
	switch odd {
	case 0:
		return KindCircuit
	case 2:
		return KindTrail
	default:
		return KindNone
	}
}
