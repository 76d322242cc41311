// Package treap implements an implicit-key treap: a randomized balanced
// binary search tree whose in-order position — not any stored key — is the
// only ordering relation between nodes.
//
// What & why
//
//   - A classic treap orders nodes by a key (BST property) and balances
//     itself via random priorities (min-heap property). This package drops
//     the key entirely: a node's position in the in-order sequence is
//     whatever splitting and concatenation have made it. Callers that need
//     ordered access to their own keyed data should reach for a value-keyed
//     treap instead (see the package-level Open Questions note in the
//     module's DESIGN.md for why this shape was chosen).
//   - This makes the structure a sequence, not a set: Concat appends one
//     sequence after another; SplitBefore/SplitAfter cut a sequence at a
//     node already living inside it. Both are O(log n) expected.
//   - It is the collaborator ett.Tour uses to store an Euler tour as an
//     ordered sequence of half-edges and re-splice it on every Link/Cut.
//
// Complexity
//
//   - New, Value, Destroy:              O(1)
//   - Next, Prev:                       O(log n) expected (amortized O(1) over a full walk)
//   - FindRoot, FindMin, FindMax, Size:  O(log n) expected
//   - Compare:                          O(log n) expected (path-to-root on both sides)
//   - SplitBefore, SplitAfter, Concat:  O(log n) expected
//
// Concurrency
//
//   - Not safe for concurrent use without external synchronization, same as
//     ett.Tour: every exported function here mutates shared tree state
//     (parent/child pointers, subtree sizes) in place.
//
// Ownership
//
//   - A *Node[T] is exclusively owned by whatever allocated it (in this
//     module, a *ett.HalfEdge). Destroy only detaches bookkeeping; it must
//     only be called on an isolated node (Size(n) == 1), matching the
//     donor module's pattern of precondition-checked destructors.
package treap
