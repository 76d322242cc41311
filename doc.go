// Package eulertour is the module root for a dynamic-connectivity toolkit
// built around Euler Tour Trees.
//
// What lives here?
//
//	ett/          — Euler Tour Tree: Link/Cut/Connected/Size in O(log n) expected
//	treap/        — the implicit-key treap collaborator ett is built on
//	core/         — fundamental Graph, Vertex, Edge types, kept because
//	                prim_kruskal.Kruskal takes a *core.Graph as input
//	prim_kruskal/ — Kruskal's MST, the one higher-level algorithm kept in
//	                this module, specifically because it is a genuine
//	                consumer of ett: its cycle check is an ett.Tour
//	graph/        — an earlier, self-contained Graph type predating the
//	                core.Graph split; its own Kruskal is wired to ett the
//	                same way prim_kruskal's is
//
// Every other algorithm package from the donor codebase this module started
// from (bfs, dfs, dijkstra, flow, matrix, builder, tsp, dtw, gridgraph,
// algorithms, converterts, graph/core) answers questions ett has no bearing
// on — shortest path, max flow, matrix algebra, construction helpers,
// external-library adapters — and was removed rather than kept as
// unexercised weight; see DESIGN.md's final adaptation pass for the
// per-package accounting.
//
// Why ett/treap and not core.Graph for dynamic connectivity?
//
//   - core.Graph is a general-purpose, lock-protected adjacency structure;
//     answering "are u and v connected" against it costs a full traversal.
//   - ett.Tour answers the same question in O(log n) expected, by maintaining
//     an Euler tour of each tree as an order-statistics treap sequence and
//     re-splicing that sequence on every Link/Cut.
//   - ett.Tour is intentionally not thread-safe (see ett/doc.go); callers
//     needing concurrent access should serialize their own calls, the same
//     way the donor's core.Graph serializes via its own internal locks.
//
// This package itself holds no code; it exists to document the module layout.
// Each subpackage documents its own use, complexity and error contract.
package eulertour
