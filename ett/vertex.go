// File: vertex.go
// Role: component B's lifecycle operations (CreateVertex, RemoveVertex,
//       GetVertex) and Connected, which §4.1 assigns to the vertex record.
package ett

import "fmt"

// CreateVertex adds a new singleton vertex with the given id and
// increments the component count. CreateVertex panics if id is already
// present — a duplicate id is a programmer error, not a recoverable one.
func (t *Tour) CreateVertex(id string) *Vertex {
	if _, exists := t.vertices[id]; exists {
		panic(fmt.Sprintf("ett: CreateVertex: vertex %q already exists", id))
	}
	v := &Vertex{id: id, tour: t}
	t.vertices[id] = v
	t.nComponents++
	return v
}

// RemoveVertex deletes the singleton vertex with the given id and
// decrements the component count. RemoveVertex panics if id is absent or
// if the vertex still has incident edges — the caller must Cut every
// incident edge first.
func (t *Tour) RemoveVertex(id string) {
	v, exists := t.vertices[id]
	if !exists {
		panic(fmt.Sprintf("ett: RemoveVertex: vertex %q not found", id))
	}
	if !v.isSingleton() {
		panic(fmt.Sprintf("ett: RemoveVertex: vertex %q still has incident edges", id))
	}
	delete(t.vertices, id)
	t.nComponents--
}

// GetVertex returns the vertex with the given id, and whether it exists.
func (t *Tour) GetVertex(id string) (*Vertex, bool) {
	v, ok := t.vertices[id]
	return v, ok
}

// Connected reports whether u and v are in the same component. Absent ids
// are reported as not connected rather than panicking, matching
// core.Graph.HasVertex's "absent means false" convention.
func (t *Tour) Connected(u, v string) bool {
	uv, ok := t.vertices[u]
	if !ok {
		return false
	}
	vv, ok := t.vertices[v]
	if !ok {
		return false
	}
	return connected(uv, vv)
}

// connected implements §4.1's Connected(a,b): true if a==b; otherwise both
// must be non-singleton and share a treap root.
func connected(a, b *Vertex) bool {
	if a == b {
		return true
	}
	if a.isSingleton() || b.isSingleton() {
		return false
	}
	return treapRootOf(a) == treapRootOf(b)
}
