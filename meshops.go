package quickhull

// createTriangle allocates a face and three half-edges linking heads in
// order a, b, c around the face (counter-clockwise as viewed from outside;
// the caller is responsible for orientation). No twin pointers are set.
func (e *Engine) createTriangle(a, b, c vertexID) faceID {
	f := e.newFace()
	ea, eb, ec := e.newEdge(), e.newEdge(), e.newEdge()

	e.edges[ea].head, e.edges[ea].face, e.edges[ea].next = b, f, eb
	e.edges[eb].head, e.edges[eb].face, e.edges[eb].next = c, f, ec
	e.edges[ec].head, e.edges[ec].face, e.edges[ec].next = a, f, ea

	e.verts[a].edge = ea
	e.verts[b].edge = eb
	e.verts[c].edge = ec

	e.faces[f].edge = ea
	e.updateSupportPlane(f)
	return f
}

// pairTwins wires two half-edges as each other's twin.
func (e *Engine) pairTwins(a, b edgeID) {
	e.edges[a].twin = b
	e.edges[b].twin = a
}

// extrudeOut builds a tetrahedron from a base face and an apex v known to
// lie in the base's negative half-space: three new faces are created, one
// per base edge, each sharing that edge with the base (outward pairing) and
// sharing the apex with its two neighbors (inward pairing). Used only at
// initial tetrahedron construction.
func (e *Engine) extrudeOut(base faceID, apex vertexID) [3]faceID {
	e0 := e.faces[base].edge
	e1 := e.edges[e0].next
	e2 := e.edges[e1].next
	baseEdges := [3]edgeID{e0, e1, e2}

	var newFaces [3]faceID
	var apexEdges [3]edgeID // the edge of each new face that ends at apex, i.e. incident to apex on the "incoming" side

	for i, be := range baseEdges {
		tail := e.tailOf(be)
		head := e.edges[be].head
		// New face wound (head, tail, apex) so its first edge runs
		// head -> tail: the reverse of be (tail -> head), as required of a twin.
		nf := e.createTriangle(head, tail, apex)
		newFaces[i] = nf

		outward := e.faces[nf].edge // head_i -> tail_i
		e.pairTwins(be, outward)

		// apexEdges[i] is the new face's second edge: tail_i -> apex.
		apexEdges[i] = e.edges[outward].next
	}

	// Each new face's third edge runs apex -> head_i. Since the base cycle
	// satisfies head_i == tail_{i+1}, that edge is the same physical edge as
	// face (i+1)'s second edge (tail_{i+1} -> apex), walked in reverse.
	for i := 0; i < 3; i++ {
		next := (i + 1) % 3
		thirdOfI := e.edges[apexEdges[i]].next // apex -> head_i
		e.pairTwins(thirdOfI, apexEdges[next])
	}

	return newFaces
}

// tailOf returns the tail vertex of half-edge ed: the head of its
// predecessor in the triangle's cycle. In a 3-cycle the predecessor of ed is
// ed.next.next (two hops forward wraps back to the edge before ed).
func (e *Engine) tailOf(ed edgeID) vertexID {
	return e.edges[e.edges[e.edges[ed].next].next].head
}

// extrudeIn builds a fan of k new triangles connecting a counter-clockwise
// horizon loop (half-edges whose twin currently borders a non-visible face)
// to a single apex vertex known to lie in the loop's positive half-space.
// Each new face's base edge takes over the retiring half-edge's twin slot;
// consecutive new faces are paired along their shared apex-incident edges.
func (e *Engine) extrudeIn(loop []edgeID, apex vertexID) []faceID {
	k := len(loop)
	newFaces := make([]faceID, k)
	apexIn := make([]edgeID, k)  // edge running head_i -> apex (second edge)
	apexOut := make([]edgeID, k) // edge running apex -> tail_i (third edge)

	for i, he := range loop {
		head := e.edges[he].head
		tail := e.tailOf(he)

		// Face wound (tail, head, apex): first edge runs tail -> head,
		// the same direction as he itself, so it can take over he's slot
		// as the twin of he.twin (the surviving hull-side neighbor).
		nf := e.createTriangle(tail, head, apex)
		newFaces[i] = nf

		outward := e.faces[nf].edge // tail_i -> head_i
		e.pairTwins(e.edges[he].twin, outward)

		apexIn[i] = e.edges[outward].next   // head_i -> apex
		apexOut[i] = e.edges[apexIn[i]].next // apex -> tail_i
	}

	// The horizon loop is a CCW cycle with head_i == tail_{i+1}, so the
	// physical edge shared between face i and face i+1 is apex <-> head_i:
	// face i walks it head_i -> apex (apexIn[i]); face i+1 walks the same
	// edge apex -> tail_{i+1} (== apex -> head_i, i.e. apexOut[i+1]).
	for i := 0; i < k; i++ {
		next := (i + 1) % k
		e.pairTwins(apexIn[i], apexOut[next])
	}

	return newFaces
}
