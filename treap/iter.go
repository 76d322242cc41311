// File: iter.go
// Role: range-over-func iteration over a treap sequence, grounded in
//       gotreap's Elements()/Values() walk style but expressed as an
//       iter.Seq so callers can `for n := range treap.All(root) { ... }`.
package treap

import "iter"

// All yields every node of n's tree in ascending sequence order, starting
// from the in-order successor walk rather than a recursive traversal, so
// it composes with concurrent Next-based cursors the same way the donor
// pattern's Elements() does.
func All[T any](n *Node[T]) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if n == nil {
			return
		}
		for cur := FindMin(n); cur != nil; cur = cur.Next() {
			if !yield(cur) {
				return
			}
		}
	}
}

// Backward yields every node of n's tree in descending sequence order.
func Backward[T any](n *Node[T]) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if n == nil {
			return
		}
		for cur := FindMax(n); cur != nil; cur = cur.Prev() {
			if !yield(cur) {
				return
			}
		}
	}
}
