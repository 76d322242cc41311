// File: iterator.go
// Role: component F — single-pass, forward-only iteration over the
//       vertices and half-edges of a component, as both a range-over-func
//       iter.Seq and a pull-style cursor.
package ett

import (
	"iter"

	"github.com/katalvlaran/eulertour/treap"
)

// VertexCursor pulls one vertex at a time from a component walk, for
// callers that need to interleave iteration with other work, matching the
// donor's hook-based dfs/bfs preference for explicit step-by-step control.
type VertexCursor struct {
	node *treap.Node[*HalfEdge]
	done bool
	last *Vertex // the tour's final "to" vertex, returned once after the last half-edge
}

// Next returns the next vertex in the walk, or (nil, false) once the walk
// is exhausted. A VertexCursor is invalidated by any mutation of the Tour.
func (c *VertexCursor) Next() (*Vertex, bool) {
	if c.done {
		return nil, false
	}
	if c.node == nil {
		c.done = true
		if c.last != nil {
			v := c.last
			c.last = nil
			return v, true
		}
		return nil, false
	}
	v := c.node.Value().from
	if next := c.node.Next(); next != nil {
		c.node = next
	} else {
		// The walk is about to end; yield the tour's final "to" once more
		// before stopping, since it never appears as a half-edge's "from".
		c.last = c.node.Value().to
		c.node = nil
	}
	return v, true
}

// VertexIterator returns an iter.Seq over every vertex in v's component,
// each exactly once. ok is false if v is absent.
func (t *Tour) VertexIterator(v string) (iter.Seq[*Vertex], bool) {
	vertex, ok := t.vertices[v]
	if !ok {
		return nil, false
	}
	if vertex.isSingleton() {
		return func(yield func(*Vertex) bool) {
			yield(vertex)
		}, true
	}

	start := treap.FindMin(vertex.leftOut.node)
	return func(yield func(*Vertex) bool) {
		cursor := &VertexCursor{node: start}
		// The tour visits a vertex of degree d several times; report each once.
		seen := make(map[*Vertex]bool)
		for {
			next, ok := cursor.Next()
			if !ok {
				return
			}
			if seen[next] {
				continue
			}
			seen[next] = true
			if !yield(next) {
				return
			}
		}
	}, true
}

// EdgeIterator returns an iter.Seq over every half-edge in v's component,
// in tour order (each undirected edge thus appears twice: once forward,
// once backward). ok is false if v is absent; a singleton yields nothing.
func (t *Tour) EdgeIterator(v string) (iter.Seq[*HalfEdge], bool) {
	vertex, ok := t.vertices[v]
	if !ok {
		return nil, false
	}
	if vertex.isSingleton() {
		return func(func(*HalfEdge) bool) {}, true
	}

	start := treap.FindMin(vertex.leftOut.node)
	return func(yield func(*HalfEdge) bool) {
		for n := start; n != nil; n = n.Next() {
			if !yield(n.Value()) {
				return
			}
		}
	}, true
}
