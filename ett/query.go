// File: query.go
// Role: component E's pure read-only queries — FindRoot, Size,
//       GetNodesInComponent — plus the treapRootOf helper shared with
//       vertex.go's Connected.
package ett

import "github.com/katalvlaran/eulertour/treap"

// treapRootOf returns the root of the treap node holding v's leftOut
// half-edge. v must be non-singleton.
func treapRootOf(v *Vertex) *treap.Node[*HalfEdge] {
	return treap.FindRoot(v.leftOut.node)
}

// FindRoot returns the id of the vertex at which v's tour is currently
// rooted — the "from" endpoint of the half-edge at the treap's minimum
// position. ok is false if v is absent or a singleton.
func (t *Tour) FindRoot(v string) (string, bool) {
	vertex, ok := t.vertices[v]
	if !ok || vertex.isSingleton() {
		return "", false
	}
	min := treap.FindMin(vertex.leftOut.node)
	return min.Value().from.id, true
}

// Size returns the number of vertices in v's component. ok is false if v
// is absent.
func (t *Tour) Size(v string) (int, bool) {
	vertex, ok := t.vertices[v]
	if !ok {
		return 0, false
	}
	if vertex.isSingleton() {
		return 1, true
	}
	treapSize := treap.Size(vertex.leftOut.node)
	return treapSize/2 + 1, true
}

// GetNodesInComponent returns the ids of every vertex in v's component,
// each exactly once. ok is false if v is absent.
func (t *Tour) GetNodesInComponent(v string) ([]string, bool) {
	seq, ok := t.VertexIterator(v)
	if !ok {
		return nil, false
	}
	var ids []string
	for vertex := range seq {
		ids = append(ids, vertex.id)
	}
	return ids, true
}
