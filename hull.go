package quickhull

import "errors"

// errIterationCapExceeded is returned by Build when the defensive iteration
// cap (maxBuildIterations) is hit — reachable only if the manifold invariant
// has been violated, converting what would otherwise be an infinite loop
// into a reported error.
var errIterationCapExceeded = errors.New("quickhull: iteration cap exceeded, manifold invariant likely broken")

// Initialize resets the engine, borrows points for the engine's lifetime
// and seeds the initial tetrahedron (or switches to the 2-D fallback when
// the input is coplanar). Returns ErrTooFewPoints when there are fewer than
// three input points.
func (e *Engine) Initialize(points []Vec3) error {
	e.Clear()

	if len(points) < 3 {
		return ErrTooFewPoints
	}

	e.points = points
	for i := range points {
		e.newVertex(i)
	}

	return e.seed()
}

// Hull enumerates the current live faces by a connected-component traversal
// from any known hull face and returns a list of triangles, each a triple
// of input-point indices wound counter-clockwise as viewed from outside.
// When the hull is not yet complete, it returns the faces of the current
// partial hull. In coplanar mode it delegates to the 2-D fallback and fans
// the returned polygon into triangles.
func (e *Engine) Hull() []Triangle {
	if e.coplane != nil {
		return e.coplane.hull()
	}

	var start faceID = nilID
	for f := range e.faces {
		if e.faces[f].live {
			start = faceID(f)
			break
		}
	}
	if start == nilID {
		return nil
	}

	seen := make(map[faceID]bool)
	stack := []faceID{start}
	var tris []Triangle

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[f] || !e.faces[f].live {
			continue
		}
		seen[f] = true

		edges := e.faceEdges(f)
		a := e.verts[e.edges[edges[0]].head].point
		b := e.verts[e.edges[edges[1]].head].point
		c := e.verts[e.edges[edges[2]].head].point
		tris = append(tris, Triangle{A: uint32(a), B: uint32(b), C: uint32(c)})

		for _, ed := range edges {
			nf := e.edges[e.edges[ed].twin].face
			if !seen[nf] {
				stack = append(stack, nf)
			}
		}
	}

	return tris
}
