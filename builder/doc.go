// Package builder provides deterministic graph fixtures for the Eulerian
// analyzer and the Fleury trail builder, in the "functional options +
// constructor closures" style.
//
// The package offers the following key components:
//
//   - BuildGraph: one orchestrator that creates a core.Graph[int], resolves
//     BuilderOptions and runs Constructors in order.
//   - Topology constructors: Cycle, Path, Star, Wheel, Complete, EdgeList,
//     RandomSparse and Demo (the six-vertex graph the command line uses by
//     default).
//   - Options: WithLabelFn (vertex payloads), WithEdgeLabelFn (edge display
//     strings), WithSeed / WithRand (stochastic constructors).
//
// Composition: every constructor numbers its vertices after the ones already
// in the graph, so BuildGraph(nil, Cycle(3), Cycle(3)) yields two disjoint
// triangles labelled 1..3 and 4..6.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give identical graphs.
//   - Never panic at build time; option constructors panic on nil functions.
//   - Sentinel errors (ErrTooFewVertices, ...) wrapped with the constructor name.
package builder
