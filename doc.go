// Package fleurys is a small in-memory toolkit for deciding whether an
// undirected graph can be walked edge by edge, and for producing that walk
// with Fleury's algorithm.
//
// 🚀 What is inside?
//
//	A thread-safe graph core plus the Eulerian tooling built on it:
//		• Core primitives: vertices with generic labels, multi-edges, self-loops
//		• Structural queries: degree, reachability, connectivity, cycles, bridges
//		• Feasibility: odd-degree analysis with a cyclic or connected policy
//		• Trail construction: Fleury's walk with first-available or bridge-avoiding selection
//		• Fixtures: deterministic topology builders (cycle, path, star, wheel, complete, random)
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       - Graph, Vertex, Edge types & thread-safe primitives
//	euler/      - odd-degree analysis, feasibility verdict and Report
//	fleury/     - trail construction on an independent working copy
//	builder/    - functional-option graph constructors and the demo graph
//	converters/ - export to gonum multigraphs and component counting
//	cmd/fleury/ - command line front end
//
// Quick ASCII example:
//
//	    1───2
//	     \ /
//	      3
//
//	a triangle: every degree is even, so the walk 1-2, 2-3, 3-1 is a circuit.
//
//	go run ./cmd/fleury -graph cycle -n 3
package fleurys
