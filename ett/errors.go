// File: errors.go
// Role: package-level sentinel errors and the error-handling policy they
//       follow, carried forward from the donor module's builder/errors.go
//       and matrix/errors.go convention.
package ett

import "errors"

// Error handling policy.
//
// Sentinel errors declared here are the only errors this package returns;
// callers must check them with errors.Is, never by string comparison. A
// sentinel is never wrapped with extra context at its definition site —
// callers that want context wrap it themselves: fmt.Errorf("%w: ...", Err...).
//
// Sentinels cover recoverable, caller-facing conditions: an absent vertex
// id, u == v or an already-connected pair passed to Link, a missing edge
// passed to Cut (including two existing vertices that share no edge). They
// do NOT cover programmer-error preconditions (double-creating a vertex id,
// removing an absent or non-singleton vertex) — those panic, since
// recovering from them would silently mask caller bugs rather than surface
// them; see the package doc comment and SPEC_FULL.md §7 for the full policy.
var (
	// ErrVertexNotFound is returned when an operation references a vertex
	// id that is not present in the tour.
	ErrVertexNotFound = errors.New("ett: vertex not found")

	// ErrSameVertex is returned by Link when called with u == v.
	ErrSameVertex = errors.New("ett: cannot link a vertex to itself")

	// ErrAlreadyConnected is returned by Link when u and v are already in
	// the same component.
	ErrAlreadyConnected = errors.New("ett: vertices already connected")

	// ErrEdgeNotFound is returned by Cut when u and v are not joined by a
	// present edge.
	ErrEdgeNotFound = errors.New("ett: edge not found")
)
