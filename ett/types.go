// File: types.go
// Role: the Vertex and HalfEdge records (components B and C), and the Tour
//       aggregate that owns them, plus its functional construction options.
package ett

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/eulertour/treap"
)

// defaultRand is the fallback priority source for Tours constructed
// without WithRand, mirroring treap.defaultRand's seeding convention.
var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// Vertex is a single node of the forest maintained by a Tour. leftOut and
// rightIn are either both nil (v is a singleton, incident to no edge) or
// both non-nil (invariant I1); when non-nil they are the first half-edge
// leaving v and the last half-edge entering v, in the current Euler tour
// order of v's component.
type Vertex struct {
	id       string
	leftOut  *HalfEdge
	rightIn  *HalfEdge
	tour     *Tour
}

// ID returns v's identifier.
func (v *Vertex) ID() string { return v.id }

// isSingleton reports whether v currently has no incident edges.
func (v *Vertex) isSingleton() bool { return v.leftOut == nil }

// HalfEdge is a directed half of an undirected edge {u,v}. Exactly one of
// an edge's two half-edges is forward; the other, its inverse, is
// backward. A HalfEdge exclusively owns the treap node that stores it in
// the tour sequence.
type HalfEdge struct {
	from, to *Vertex
	forward  bool
	inverse  *HalfEdge
	node     *treap.Node[*HalfEdge]
}

// From returns the vertex this half-edge departs from.
func (h *HalfEdge) From() *Vertex { return h.from }

// To returns the vertex this half-edge arrives at.
func (h *HalfEdge) To() *Vertex { return h.to }

// contains reports whether h has v as either of its endpoints.
func (h *HalfEdge) contains(v *Vertex) bool {
	return h.from == v || h.to == v
}

// newHalfEdgePair allocates the forward/backward half-edges for an edge
// between u and v, cross-wires their inverse pointers, and allocates each
// one's treap node as an isolated singleton sequence.
func newHalfEdgePair(u, v *Vertex, rng *rand.Rand) (forward, backward *HalfEdge) {
	forward = &HalfEdge{from: u, to: v, forward: true}
	backward = &HalfEdge{from: v, to: u, forward: false}
	forward.inverse = backward
	backward.inverse = forward

	forward.node = treap.New(forward, treap.WithRand[*HalfEdge](rng))
	backward.node = treap.New(backward, treap.WithRand[*HalfEdge](rng))
	return forward, backward
}

// destroy tears down h's treap node. h.node must be isolated (its treap's
// size is 1) at the point this is called; Destroy itself enforces that.
func (h *HalfEdge) destroy() {
	h.node.Destroy()
	h.node = nil
}

// Tour is the dynamic-connectivity structure: a forest of vertices
// maintained as a collection of Euler tours, each stored as a treap
// sequence of half-edges. Tour is not safe for concurrent use; see
// ett/doc.go for the full concurrency contract.
type Tour struct {
	vertices    map[string]*Vertex
	edges       *edgeIndex
	nComponents int
	rng         *rand.Rand
}

// TourOption configures a Tour at construction. See WithRand.
type TourOption func(*Tour)

// WithRand supplies the *rand.Rand used to draw treap priorities for every
// half-edge node this Tour allocates, mirroring the donor's
// builder.WithRand/WithSeed pattern. Passing a seeded source makes tour
// shape (and therefore rotation counts) reproducible across runs.
func WithRand(r *rand.Rand) TourOption {
	return func(t *Tour) {
		if r != nil {
			t.rng = r
		}
	}
}

// NewTour constructs an empty Tour: zero vertices, zero components.
func NewTour(opts ...TourOption) *Tour {
	t := &Tour{
		vertices: make(map[string]*Vertex),
		edges:    newEdgeIndex(),
		rng:      defaultRand,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
