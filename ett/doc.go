// Package ett implements a dynamic connectivity structure over an
// undirected forest using Euler Tour Trees: Link and Cut run in O(log n)
// expected time, and Connected/FindRoot/Size answer in the same bound by
// querying the treap sequence that stores each tree's Euler tour.
//
// How it works
//
//   - Every tree in the forest is represented as a sequence of half-edges
//     — one entry per directed traversal of an edge during a depth-first
//     walk — stored in tour order inside a treap (package treap). A tree
//     of k vertices has 2(k-1) half-edges; a singleton vertex owns none.
//   - Each vertex keeps two anchors into that sequence: leftOut (its
//     first outgoing half-edge) and rightIn (its last incoming one).
//     Both are nil for a singleton, both present otherwise.
//   - Link joins two trees by re-rooting each at the new edge's endpoint
//     (makeRoot) and splicing the two sequences together around two new
//     half-edges. Cut does the reverse: it isolates the edge's pair of
//     half-edges and reassigns anchors for whatever remains on each side.
//
// Concurrency
//
// Tour is not safe for concurrent use. Unlike core.Graph, which guards
// its adjacency list with its own sync.RWMutex, Tour performs no internal
// locking at all — every exported method assumes exclusive access for
// the duration of the call. Callers needing concurrent access must
// serialize their own calls to a Tour.
//
// No operation here accepts a context.Context: every operation completes
// in time bounded by the size of the local component, never blocks, and
// has nothing to cancel.
//
// Error handling
//
// Absent-id lookups (Connected, FindRoot, Size, GetVertex,
// GetNodesInComponent) report absence through a boolean or through false,
// never by panicking. Link and Cut return sentinel errors for recoverable,
// caller-facing conditions (absent id, already connected, missing edge).
// Preconditions that indicate a caller bug — double-creating a vertex id,
// removing a vertex that still has incident edges — panic instead of
// returning an error, since silently tolerating them would mask state
// corruption rather than surface it.
package ett
