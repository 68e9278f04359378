package quickhull

// planeFromTriangle computes the unit-normal/offset support plane of the
// triangle (v1, v2, v3) wound counter-clockwise as viewed from outside:
// n = normalize((v2-v1) x (v3-v1)), d = -(n . v1). It is the face-less core
// of updateSupportPlane, reused by the seeder to test candidate base planes
// before any face is allocated for them.
func planeFromTriangle(v1, v2, v3 Vec3) (Vec3, float64) {
	n := v2.Sub(v1).Cross(v3.Sub(v1))
	if l := n.Len(); l > 0 {
		n = n.Mul(1.0 / l)
	}
	return n, -n.Dot(v1)
}

// updateSupportPlane recomputes a face's cached plane from its three
// bordering half-edges.
func (e *Engine) updateSupportPlane(f faceID) {
	e0 := e.faces[f].edge
	e1 := e.edges[e0].next
	e2 := e.edges[e1].next

	v1 := e.vertexPoint(e.edges[e0].head)
	v2 := e.vertexPoint(e.edges[e1].head)
	v3 := e.vertexPoint(e.edges[e2].head)

	e.faces[f].normal, e.faces[f].offset = planeFromTriangle(v1, v2, v3)
}

// distance returns the signed distance from p to face f's plane.
func (e *Engine) distance(f faceID, p Vec3) float64 {
	ff := &e.faces[f]
	return ff.normal.Dot(p) + ff.offset
}

// reverse flips the orientation of the three half-edges bordering f in
// place: heads and next-pointers swap so the triangle winds the other way,
// the cached normal/offset are negated, and each affected vertex's outgoing
// edge back-reference is repointed.
func (e *Engine) reverse(f faceID) {
	e0 := e.faces[f].edge
	e1 := e.edges[e0].next
	e2 := e.edges[e1].next

	h0, h1, h2 := e.edges[e0].head, e.edges[e1].head, e.edges[e2].head
	t0, t1, t2 := e.edges[e0].twin, e.edges[e1].twin, e.edges[e2].twin

	// Reversing e0->e1->e2->e0 (heads h0,h1,h2) yields a cycle visiting the
	// same vertices in the opposite order: e0'(head h2)->e2'(head h1)->e1'(head h0).
	e.edges[e0].head, e.edges[e0].next, e.edges[e0].twin = h2, e2, t1
	e.edges[e2].head, e.edges[e2].next, e.edges[e2].twin = h1, e1, t0
	e.edges[e1].head, e.edges[e1].next, e.edges[e1].twin = h0, e0, t2

	e.verts[h0].edge = e0
	e.verts[h2].edge = e2
	e.verts[h1].edge = e1

	ff := &e.faces[f]
	ff.normal = ff.normal.Mul(-1)
	ff.offset = -ff.offset
}

// tryAssign tests whether vertex v lies in face f's positive half-space. If
// so it is folded into f's outside set (prepended and recorded as the new
// furthest vertex when it is at least as far as the current furthest,
// otherwise appended) and tryAssign returns true. Only strictly negative
// distances are rejected; a point exactly on the plane is folded in like any
// other (the iteration driver only processes a face whose furthest distance
// is strictly positive and tests visibility with a strict inequality, so a
// zero-distance point never itself triggers re-extrusion).
func (e *Engine) tryAssign(f faceID, v vertexID) bool {
	d := e.distance(f, e.vertexPoint(v))
	if d < 0 {
		return false
	}

	ff := &e.faces[f]
	if len(ff.outside) == 0 || d >= ff.furthest {
		ff.outside = append([]vertexID{v}, ff.outside...)
		ff.furthest = d
	} else {
		ff.outside = append(ff.outside, v)
	}
	return true
}
