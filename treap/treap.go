// File: treap.go
// Role: Node type, construction/destruction, and the internal size/priority
//       bookkeeping shared by split_concat.go and query.go.
package treap

import (
	"math/rand"
	"time"
)

// defaultRand is the package-level priority source used when no Option
// supplies one. Seeded once at package init, mirroring the donor module's
// own rngFrom fallback (builder/sequence_primitives.go): "nil means fall
// back to an unseeded-by-the-caller, still-deterministic-per-process source".
var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// Node is one element of an implicit-key treap sequence. Its position in
// the owning sequence is purely structural: there is no stored key to
// compare against, only the current shape of the tree.
//
// A Node is exclusively owned by whichever caller allocated it via New; the
// treap package never reads or writes the payload itself.
type Node[T any] struct {
	payload  T
	priority uint64

	left, right, parent *Node[T]
	size                int // size of the subtree rooted at this node, including itself
}

// config holds the resolved options for New.
type config struct {
	rand *rand.Rand
}

// Option configures a single New call. See WithRand.
type Option[T any] func(*config)

// New allocates a fresh, isolated node (a singleton one-element sequence)
// wrapping payload. Complexity: O(1).
func New[T any](payload T, opts ...Option[T]) *Node[T] {
	cfg := config{rand: defaultRand}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Node[T]{
		payload:  payload,
		priority: cfg.rand.Uint64(),
		size:     1,
	}
}

// Value returns the payload stored at n. Complexity: O(1).
func (n *Node[T]) Value() T {
	return n.payload
}

// Destroy detaches n's internal bookkeeping. n must be isolated (Size(n)
// == 1) — i.e. it must not currently be linked into a larger sequence via
// Concat. Destroying a non-isolated node is a programmer error and panics,
// matching the donor module's precondition-checked destructors.
//
// Complexity: O(1).
func (n *Node[T]) Destroy() {
	if n == nil {
		return
	}
	if Size(n) != 1 {
		panic("treap: Destroy called on a node that is not isolated")
	}
	n.left, n.right, n.parent = nil, nil, nil
}

// size is the nil-safe subtree-size accessor used throughout this package.
func size[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// updateSize recomputes n.size from its (possibly just-changed) children.
// Must be called bottom-up after any structural edit touching n's children.
func updateSize[T any](n *Node[T]) {
	if n == nil {
		return
	}
	n.size = 1 + size(n.left) + size(n.right)
}

// setLeft attaches child as n's left child, fixing the back-pointer.
func setLeft[T any](n, child *Node[T]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

// setRight attaches child as n's right child, fixing the back-pointer.
func setRight[T any](n, child *Node[T]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}
