// SPDX-License-Identifier: MIT
// Package fleury_test validates trail construction: the start-vertex rule,
// both selection policies, the feasibility gate and the trail invariants.
package fleury_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciroDourado/fleury-s-algorithm/builder"
	"github.com/ciroDourado/fleury-s-algorithm/core"
	"github.com/ciroDourado/fleury-s-algorithm/euler"
	"github.com/ciroDourado/fleury-s-algorithm/fleury"
)

// bowtie is two triangles sharing vertex 3, with 3-1 inserted before 3-4 so
// that the first-available rule closes the left triangle too early.
var bowtie = [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}}

// assertWalk checks the invariants every trail satisfies, feasible or not.
func assertWalk(t *testing.T, g *core.Graph[int], tr *fleury.Trail[int]) {
	t.Helper()
	assert.Equal(t, g.EdgeCount(), tr.Len()+tr.Remaining, "steps + remaining must equal the edge count")
	assert.Equal(t, tr.Remaining == 0, tr.Complete)

	seen := make(map[core.EdgeID]bool, tr.Len())
	cur := tr.Start
	for i, s := range tr.Steps {
		assert.Equal(t, cur, s.From, "step %d does not continue the walk", i)
		assert.False(t, seen[s.Edge], "edge %d consumed twice", s.Edge)
		seen[s.Edge] = true

		e, err := g.Edge(s.Edge)
		require.NoError(t, err, "trail used an edge unknown to the source graph")
		assert.Equal(t, s.To, e.Other(s.From))
		assert.Equal(t, e.Label, s.EdgeLabel)
		assert.Equal(t, g.Label(s.From), s.FromLabel)
		assert.Equal(t, g.Label(s.To), s.ToLabel)
		cur = s.To
	}
	assert.Equal(t, cur, tr.End)
}

// TestBuild_ScenarioA_TriangleCircuit walks 1-2-3-1.
func TestBuild_ScenarioA_TriangleCircuit(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(3))
	require.True(t, euler.HasEulerianTrail(g))

	tr, err := fleury.Build(g)
	require.NoError(t, err)
	assertWalk(t, g, tr)

	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 1}}, tr.Pairs())
	assert.True(t, tr.Complete)
	assert.True(t, tr.Closed())
	assert.Equal(t, []core.VertexID{0, 1, 2, 0}, tr.Vertices())
	assert.Equal(t, "1 - 2\n2 - 3\n3 - 1\n", tr.String())
}

// TestBuild_ScenarioB_PathTrail walks a path from its first end to the other.
// The cyclic policy rejects the path, so the gate is bypassed or switched.
func TestBuild_ScenarioB_PathTrail(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(4))
	assert.False(t, euler.HasEulerianTrail(g), "an acyclic path fails the cyclic proxy")

	want := [][2]int{{1, 2}, {2, 3}, {3, 4}}

	tr, err := fleury.Build(g)
	require.NoError(t, err)
	assertWalk(t, g, tr)
	assert.Equal(t, want, tr.Pairs())
	assert.Equal(t, core.VertexID(0), tr.Start)
	assert.Equal(t, core.VertexID(3), tr.End)
	assert.True(t, tr.Complete)
	assert.False(t, tr.Closed())

	tr, err = fleury.Apply(g, fleury.WithPolicy(euler.PolicyConnected))
	require.NoError(t, err)
	assert.Equal(t, want, tr.Pairs())

	_, err = fleury.Apply(g)
	assert.ErrorIs(t, err, fleury.ErrInfeasible)
}

// TestApply_ScenarioC_StarInfeasible rejects four odd-degree vertices.
func TestApply_ScenarioC_StarInfeasible(t *testing.T) {
	g := builder.MustBuild(nil, builder.Star(5))

	for _, p := range []euler.Policy{euler.PolicyCyclic, euler.PolicyConnected} {
		tr, err := fleury.Apply(g, fleury.WithPolicy(p))
		assert.ErrorIs(t, err, fleury.ErrInfeasible, "policy %s", p)
		assert.Nil(t, tr)
	}
}

// TestApply_ScenarioD_DisjointTriangles pins both policies' behaviour on two
// disjoint triangles: the cyclic proxy accepts them and the walk covers only
// the first triangle; the connected policy rejects them.
func TestApply_ScenarioD_DisjointTriangles(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(3), builder.Cycle(3))

	tr, err := fleury.Apply(g)
	require.NoError(t, err)
	assertWalk(t, g, tr)
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 1}}, tr.Pairs())
	assert.False(t, tr.Complete)
	assert.Equal(t, 3, tr.Remaining)

	_, err = fleury.Apply(g, fleury.WithPolicy(euler.PolicyConnected))
	assert.ErrorIs(t, err, fleury.ErrInfeasible)
}

// TestBuild_DemoGraph checks the six-vertex demo: the walk starts at the
// lower-degree odd vertex (2) and ends at the other odd vertex (1).
func TestBuild_DemoGraph(t *testing.T) {
	g := builder.MustBuild(nil, builder.Demo())
	want := [][2]int{{2, 1}, {1, 3}, {3, 2}, {2, 5}, {5, 1}, {1, 4}, {4, 6}, {6, 1}}

	for _, sel := range []fleury.Selection{fleury.FirstAvailable, fleury.AvoidBridges} {
		t.Run(sel.String(), func(t *testing.T) {
			tr, err := fleury.Apply(g, fleury.WithSelection(sel))
			require.NoError(t, err)
			assertWalk(t, g, tr)
			assert.Equal(t, want, tr.Pairs())
			assert.Equal(t, 2, g.Label(tr.Start))
			assert.Equal(t, 1, g.Label(tr.End))
			assert.True(t, tr.Complete)
		})
	}
}

// TestBuild_BowtieNeedsBridgeAvoidance shows the first-available rule
// stranding the walk where Fleury's rule completes it.
func TestBuild_BowtieNeedsBridgeAvoidance(t *testing.T) {
	g := builder.MustBuild(nil, builder.EdgeList(5, bowtie))
	require.True(t, euler.HasEulerianTrail(g, euler.WithPolicy(euler.PolicyConnected)))

	first, err := fleury.Build(g)
	require.NoError(t, err)
	assertWalk(t, g, first)
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 1}}, first.Pairs())
	assert.False(t, first.Complete)
	assert.Equal(t, 3, first.Remaining)

	full, err := fleury.Build(g, fleury.WithSelection(fleury.AvoidBridges))
	require.NoError(t, err)
	assertWalk(t, g, full)
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 3}, {3, 1}}, full.Pairs())
	assert.True(t, full.Complete)
	assert.True(t, full.Closed())
}

// TestBuild_DoesNotMutateSource runs both policies and compares the source.
func TestBuild_DoesNotMutateSource(t *testing.T) {
	g := builder.MustBuild(nil, builder.EdgeList(5, bowtie))
	before := g.Edges()

	for _, sel := range []fleury.Selection{fleury.FirstAvailable, fleury.AvoidBridges} {
		_, err := fleury.Build(g, fleury.WithSelection(sel))
		require.NoError(t, err)
	}
	assert.Equal(t, before, g.Edges())
}

func TestBuild_EdgeCases(t *testing.T) {
	t.Run("nil graph", func(t *testing.T) {
		_, err := fleury.Build[int](nil)
		assert.ErrorIs(t, err, fleury.ErrGraphNil)
		_, err = fleury.Apply[int](nil)
		assert.ErrorIs(t, err, fleury.ErrGraphNil)
	})

	t.Run("no vertices", func(t *testing.T) {
		tr, err := fleury.Build(core.NewGraph[int]())
		require.NoError(t, err)
		assert.Zero(t, tr.Len())
		assert.True(t, tr.Complete)
		assert.False(t, tr.Closed())
	})

	t.Run("isolated vertices only", func(t *testing.T) {
		g := core.NewGraph[int]()
		g.AddVertex(1)
		g.AddVertex(2)
		tr, err := fleury.Build(g)
		require.NoError(t, err)
		assert.Zero(t, tr.Len())
		assert.True(t, tr.Complete)
		assert.Equal(t, []core.VertexID{0}, tr.Vertices())
	})

	t.Run("self-loop circuit", func(t *testing.T) {
		g := builder.MustBuild(nil, builder.EdgeList(1, [][2]int{{0, 0}}))
		tr, err := fleury.Apply(g)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{1, 1}}, tr.Pairs())
		assert.True(t, tr.Complete)
		assert.True(t, tr.Closed())
	})

	t.Run("parallel edges consumed one at a time", func(t *testing.T) {
		g := builder.MustBuild(nil, builder.EdgeList(2, [][2]int{{0, 1}, {0, 1}, {1, 0}, {1, 0}}))
		tr, err := fleury.Apply(g)
		require.NoError(t, err)
		assertWalk(t, g, tr)
		assert.Equal(t, 4, tr.Len())
		assert.True(t, tr.Closed())
	})

	t.Run("isolated first vertex strands the walk", func(t *testing.T) {
		g := core.NewGraph[int]()
		g.AddVertex(0)
		a, b, c := g.AddVertex(1), g.AddVertex(2), g.AddVertex(3)
		_, _ = g.AddEdge(a, b, "")
		_, _ = g.AddEdge(b, c, "")
		_, _ = g.AddEdge(c, a, "")

		tr, err := fleury.Apply(g)
		require.NoError(t, err)
		assert.Zero(t, tr.Len())
		assert.False(t, tr.Complete)
		assert.Equal(t, 3, tr.Remaining)
	})
}

// TestBuild_EulerianFixtures runs Fleury's rule over known Eulerian graphs.
func TestBuild_EulerianFixtures(t *testing.T) {
	tests := []struct {
		name    string
		ctors   []builder.Constructor
		circuit bool
	}{
		{"C7", []builder.Constructor{builder.Cycle(7)}, true},
		{"K5", []builder.Constructor{builder.Complete(5)}, true},
		{"K7", []builder.Constructor{builder.Complete(7)}, true},
		{"bowtie", []builder.Constructor{builder.EdgeList(5, bowtie)}, true},
		{"demo", []builder.Constructor{builder.Demo()}, false},
		{"K4 minus an edge", []builder.Constructor{builder.EdgeList(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})}, false},
		{"house", []builder.Constructor{builder.EdgeList(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 4}, {4, 3}, {1, 3}})}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := builder.MustBuild(nil, tc.ctors...)
			require.True(t, euler.HasEulerianTrail(g, euler.WithPolicy(euler.PolicyConnected)))

			tr, err := fleury.Build(g, fleury.WithSelection(fleury.AvoidBridges))
			require.NoError(t, err)
			assertWalk(t, g, tr)
			assert.True(t, tr.Complete)
			assert.Equal(t, g.EdgeCount(), tr.Len())
			assert.Equal(t, tc.circuit, tr.Closed())

			if !tc.circuit {
				odd := euler.OddDegreeVertices(g)
				require.Len(t, odd, 2)
				low, err := euler.LowestOddDegreeVertex(g)
				require.NoError(t, err)
				assert.Equal(t, low, tr.Start)
				other := odd[0]
				if other == low {
					other = odd[1]
				}
				assert.Equal(t, other, tr.End)
			}
		})
	}
}

// TestBuild_RandomGraphs checks the walk invariants on seeded random graphs,
// and completeness under Fleury's rule whenever the textbook criterion holds
// and the start vertex is not isolated.
func TestBuild_RandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(8, 0.45))

		first, err := fleury.Build(g)
		require.NoError(t, err)
		assertWalk(t, g, first)

		full, err := fleury.Build(g, fleury.WithSelection(fleury.AvoidBridges))
		require.NoError(t, err)
		assertWalk(t, g, full)

		if !euler.HasEulerianTrail(g, euler.WithPolicy(euler.PolicyConnected)) {
			continue
		}
		if d, _ := g.Degree(full.Start); d == 0 && g.EdgeCount() > 0 {
			continue
		}
		assert.True(t, full.Complete, "seed %d: Fleury's rule must consume every edge", seed)
	}
}

func TestSelection_String(t *testing.T) {
	assert.Equal(t, "first-available", fleury.FirstAvailable.String())
	assert.Equal(t, "avoid-bridges", fleury.AvoidBridges.String())
	assert.Equal(t, "Selection(9)", fleury.Selection(9).String())
}
