// File: edgeindex.go
// Role: component D, the (u,v) -> half-edge lookup table. Mirrors
//       core.Graph's adjacencyList[from][to][edgeID] nested-map idiom, but
//       keyed only by vertex id pairs since an ETT never has multi-edges.
package ett

// edgeIndex maps an edge's two endpoints to its forward and backward
// half-edges. forward[u][v] holds the half-edge allocated with from=u,
// to=v; backward[v][u] holds its inverse. Because the underlying edge is
// undirected, a caller looking up {a,b} must be prepared for the Link call
// that created it to have been Link(a,b) or Link(b,a) — lookupEdge tries
// both.
type edgeIndex struct {
	forward  map[string]map[string]*HalfEdge
	backward map[string]map[string]*HalfEdge
}

func newEdgeIndex() *edgeIndex {
	return &edgeIndex{
		forward:  make(map[string]map[string]*HalfEdge),
		backward: make(map[string]map[string]*HalfEdge),
	}
}

// add registers a freshly-linked forward/backward pair under (u,v).
// Ownership of forward and backward transfers to the index.
func (idx *edgeIndex) add(u, v string, forward, backward *HalfEdge) {
	if idx.forward[u] == nil {
		idx.forward[u] = make(map[string]*HalfEdge)
	}
	idx.forward[u][v] = forward

	if idx.backward[v] == nil {
		idx.backward[v] = make(map[string]*HalfEdge)
	}
	idx.backward[v][u] = backward
}

// lookupEdge returns the forward/backward half-edge pair for the
// undirected edge between a and b, trying both orderings. ok is false if
// no such edge is present.
func (idx *edgeIndex) lookupEdge(a, b string) (forward, backward *HalfEdge, ok bool) {
	if f, present := idx.forward[a][b]; present {
		return f, f.inverse, true
	}
	if f, present := idx.forward[b][a]; present {
		return f, f.inverse, true
	}
	return nil, nil, false
}

// remove deletes the edge between a and b from both nested maps, trying
// both orderings. It returns ownership of the half-edges it removed.
func (idx *edgeIndex) remove(a, b string) (forward, backward *HalfEdge, ok bool) {
	if f, present := idx.forward[a][b]; present {
		delete(idx.forward[a], b)
		delete(idx.backward[b], a)
		return f, f.inverse, true
	}
	if f, present := idx.forward[b][a]; present {
		delete(idx.forward[b], a)
		delete(idx.backward[a], b)
		return f, f.inverse, true
	}
	return nil, nil, false
}
