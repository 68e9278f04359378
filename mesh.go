// Package quickhull implements an incremental Quickhull engine that computes
// the convex hull of a finite point set in three-dimensional Euclidean space,
// falling back to a two-dimensional gift-wrap (see the hull2d package) when
// the input turns out to be coplanar.
//
// The mesh itself is a half-edge manifold: vertices, directed half-edges and
// triangular faces, owned by three parallel arenas on Engine and referenced
// by integer handle rather than by pointer.
//
// References:
//   - Barber, Dobkin, Huhdanpaa: "The Quickhull Algorithm for Convex Hulls" (1996)
package quickhull

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is the point/vector type consumed and produced by this package.
type Vec3 = mgl64.Vec3

// Triangle is a single hull face expressed as indices into the original
// input point slice, wound counter-clockwise as viewed from outside the hull.
type Triangle struct {
	A, B, C uint32
}

// vertexID, edgeID and faceID are arena handles. nilID marks an absent link.
type vertexID int32
type edgeID int32
type faceID int32

const nilID = -1

// vertex carries its index into the borrowed point slice and a back-reference
// to one outgoing half-edge (nilID until the vertex has been wired into a face).
type vertex struct {
	point int
	edge  edgeID
}

// halfEdge is a directed side of a triangle. The three half-edges of a face
// form a cycle: e -> e.next -> e.next.next -> e. Every half-edge of a live
// face has a twin on the neighboring face, oppositely oriented.
type halfEdge struct {
	head vertexID
	face faceID
	next edgeID
	twin edgeID
}

// face is a triangle with a cached support plane, an outside set of vertices
// in its positive half-space, and an iteration tag used for visibility
// flood-fill during Engine.Iterate.
type face struct {
	edge     edgeID
	normal   Vec3
	offset   float64
	outside  []vertexID
	furthest float64
	tag      uint64
	live     bool
}

// Engine is the public Quickhull facade. The zero value is an empty engine,
// the same as the one NewEngine returns.
type Engine struct {
	points []Vec3

	verts []vertex
	edges []halfEdge
	faces []face

	stack []faceID
	tag   uint64

	coplane   *coplanarState
	validated bool
}

// NewEngine returns a ready-to-use, empty Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// NewEngineWithValidation returns an Engine that runs the manifold-validity
// sweep (see validate.go) after every Iterate call. It exists for tests and
// development builds; a broken invariant panics rather than returning an
// error, since it indicates a programming defect rather than a bad input.
func NewEngineWithValidation() *Engine {
	return &Engine{validated: true}
}

// Clear drops all arena data, resets the iteration tag and releases the
// borrowed points slice. After Clear, the engine is equivalent to a freshly
// constructed one (validation mode is preserved).
func (e *Engine) Clear() {
	validated := e.validated
	*e = Engine{}
	e.validated = validated
}

func (e *Engine) newVertex(pointIndex int) vertexID {
	e.verts = append(e.verts, vertex{point: pointIndex, edge: nilID})
	return vertexID(len(e.verts) - 1)
}

func (e *Engine) newEdge() edgeID {
	e.edges = append(e.edges, halfEdge{head: nilID, face: nilID, next: nilID, twin: nilID})
	return edgeID(len(e.edges) - 1)
}

// newFace allocates a face with tag 0, which never matches a real iteration
// tag (Engine.tag is incremented to at least 1 before its first use).
func (e *Engine) newFace() faceID {
	e.faces = append(e.faces, face{edge: nilID, tag: 0, live: true})
	return faceID(len(e.faces) - 1)
}

func (e *Engine) vertexPoint(v vertexID) Vec3 {
	return e.points[e.verts[v].point]
}
