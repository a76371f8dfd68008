// SPDX-License-Identifier: MIT
// Package converters provides adapters between core.Graph and gonum/graph.
//
// ToGonum exports the live edges of a core.Graph into a gonum
// multi.UndirectedGraph, keeping parallel edges and self-loops as separate
// lines. Node IDs equal core.VertexID values, so results computed by gonum
// algorithms map straight back onto the source graph.
//
// EdgeComponents runs gonum's topo.ConnectedComponents on that export and
// keeps only the components that carry at least one edge, which is the
// component notion the Eulerian criterion cares about.
package converters
