// File: makeroot.go
// Role: component E's central mechanical primitive — rotate the cyclic
//       Euler tour so that a chosen vertex is visited first.
package ett

import "github.com/katalvlaran/eulertour/treap"

// makeRoot rotates v's tour so that v's first occurrence becomes the
// treap's minimum element. A singleton is already trivially rooted at
// itself and is left untouched; a two-half-edge tour is always valid
// rooted either way and is also left untouched.
func makeRoot(v *Vertex) {
	if v.isSingleton() {
		return
	}

	f, b := v.leftOut, v.rightIn
	if treap.Compare(f.node, b.node) > 0 {
		f, b = b, f
	}

	if treap.Size(f.node) == 2 {
		return
	}

	// Choose the split point: walk forward from f until we find the
	// half-edge whose removal-point correctly isolates v's first visit.
	next := f.node.Next()
	switch {
	case next == nil || !next.Value().contains(v):
		// The occurrence right after f does not touch v: f itself must be
		// preceded by another occurrence of v, or v is already the root.
		prev := f.node.Prev()
		if prev == nil {
			return
		}
		f = prev.Value()
	default:
		// next touches v (e.g. a degree-1 neighbor pair); look one step
		// further to decide whether the split should move past it.
		if further := next.Next(); further != nil && further.Value().contains(v) {
			f = next.Value()
		}
	}

	left, right := treap.SplitAfter(f.node)
	if right != nil {
		treap.Concat(right, left)
	}
}
