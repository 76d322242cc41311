// File: cut.go
// Role: component E's Cut operation — remove an existing edge, splitting
//       its tour into the (up to) two surviving components.
package ett

import (
	"fmt"

	"github.com/katalvlaran/eulertour/treap"
)

// Cut removes the edge between u and v, which must be present. It returns
// ErrVertexNotFound if either id is absent, ErrEdgeNotFound if u and v
// exist but share no edge.
func (t *Tour) Cut(u, v string) error {
	if _, ok := t.vertices[u]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	if _, ok := t.vertices[v]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	f, b, ok := t.edges.lookupEdge(u, v)
	if !ok {
		return fmt.Errorf("%w: %q-%q", ErrEdgeNotFound, u, v)
	}

	// Orient so f precedes b in tour order.
	if treap.Compare(f.node, b.node) > 0 {
		f, b = b, f
	}

	// Capture the four bracketing neighbors before any structural change.
	p := f.node.Prev()
	pn := f.node.Next()
	nn := b.node.Prev()
	n := b.node.Next()

	from, to := f.from, f.to

	// Extract the segment [f..b] and reunite whatever tour material lies
	// strictly outside it (the component that keeps neither endpoint's
	// subtree attached through this edge).
	beforeF, rest := treap.SplitBefore(f.node)
	middle, afterB := treap.SplitAfter(b.node)
	_ = middle
	if beforeF != nil && afterB != nil {
		treap.Concat(beforeF, afterB)
	}
	_ = rest

	switch {
	case pn != nil && pn == b.node:
		// f and b are directly adjacent: no interior segment exists, so
		// from and to each inherit whichever of p/n touches them, or
		// become singletons if neither does.
		if p != nil {
			if p.Value().contains(from) {
				from.rightIn = p.Value()
			}
			if p.Value().contains(to) {
				to.rightIn = p.Value()
			}
		}
		if n != nil {
			if n.Value().contains(from) {
				from.leftOut = n.Value()
			}
			if n.Value().contains(to) {
				to.leftOut = n.Value()
			}
		}
	case pn != nil && pn.Value().contains(from):
		from.leftOut, from.rightIn = pn.Value(), nn.Value()
		if n != nil {
			to.leftOut = n.Value()
		}
		if p != nil {
			to.rightIn = p.Value()
		}
	case pn != nil && pn.Value().contains(to):
		to.leftOut, to.rightIn = pn.Value(), nn.Value()
		if n != nil {
			from.leftOut = n.Value()
		}
		if p != nil {
			from.rightIn = p.Value()
		}
	}

	// An endpoint whose anchor was never reassigned above (both of its
	// neighbors in the adjacent case were absent) was the tour's only
	// other vertex: it becomes a singleton.
	if from.leftOut == f || from.leftOut == b {
		from.leftOut, from.rightIn = nil, nil
	}
	if to.leftOut == f || to.leftOut == b {
		to.leftOut, to.rightIn = nil, nil
	}

	// Fully isolate f and b: whatever remains between them becomes the
	// standalone tour assigned to from/to above.
	_, afterF := treap.SplitAfter(f.node)
	if afterF != nil {
		treap.SplitBefore(b.node)
	}

	// An endpoint whose anchor treap has shrunk to a single node is now a
	// singleton; clear both its anchors to reflect that.
	if from.leftOut != nil && treap.Size(from.leftOut.node) == 1 {
		from.leftOut, from.rightIn = nil, nil
	}
	if to.leftOut != nil && treap.Size(to.leftOut.node) == 1 {
		to.leftOut, to.rightIn = nil, nil
	}

	fGone, bGone, _ := t.edges.remove(u, v)
	fGone.destroy()
	bGone.destroy()

	t.nComponents++
	return nil
}
