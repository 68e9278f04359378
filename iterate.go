package quickhull

// Iterate performs one incremental Quickhull step: pop the next face from
// the stack whose furthest outside vertex lies strictly above its plane,
// remove that vertex from the outside set, compute the
// visibility cone from that vertex, extract the horizon, extrude a fan of
// new triangles to the vertex, and redistribute the retiring faces' outside
// points onto the new faces. Returns false exactly when the stack has
// drained and the hull is complete.
func (e *Engine) Iterate() (bool, error) {
	if e.coplane != nil {
		return e.coplane.engine.Iterate(), nil
	}

	var f faceID
	for {
		if len(e.stack) == 0 {
			return false, nil
		}
		f = e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		if e.faces[f].live && len(e.faces[f].outside) > 0 && e.faces[f].furthest > 0 {
			break
		}
	}

	e.tag++
	apex := e.faces[f].outside[0]
	e.faces[f].outside = e.faces[f].outside[1:]

	visible := e.floodVisible(f, apex)

	horizon := e.horizonLoop(visible)

	newFaces := e.extrudeIn(horizon, apex)

	outsideTotal := 0
	for _, vf := range visible {
		outsideTotal += len(e.faces[vf].outside)
	}
	if outsideTotal >= parallelRedistributeThreshold {
		e.redistributeParallel(visible, newFaces)
	} else {
		e.redistribute(visible, newFaces)
	}

	for _, vf := range visible {
		e.faces[vf].live = false
		e.faces[vf].outside = nil
	}

	for _, nf := range newFaces {
		if len(e.faces[nf].outside) > 0 {
			e.stack = append(e.stack, nf)
		}
	}

	if e.validated {
		if err := validateManifold(e); err != nil {
			panic(err)
		}
	}

	return true, nil
}

// floodVisible flood-fills, starting from seed, every face reachable by
// crossing twin edges into a neighbor whose plane places point p strictly
// in its positive half-space. The result, tagged with the current
// iteration tag, is the visibility cone.
func (e *Engine) floodVisible(seed faceID, p vertexID) []faceID {
	pt := e.vertexPoint(p)
	visible := []faceID{seed}
	e.faces[seed].tag = e.tag

	queue := []faceID{seed}
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		for _, ed := range e.faceEdges(cur) {
			nf := e.edges[e.edges[ed].twin].face
			if e.faces[nf].tag == e.tag || !e.faces[nf].live {
				continue
			}
			if e.distance(nf, pt) > 0 {
				e.faces[nf].tag = e.tag
				visible = append(visible, nf)
				queue = append(queue, nf)
			}
		}
	}
	return visible
}

// faceEdges returns the three half-edges bordering f, in cycle order.
func (e *Engine) faceEdges(f faceID) [3]edgeID {
	e0 := e.faces[f].edge
	e1 := e.edges[e0].next
	e2 := e.edges[e1].next
	return [3]edgeID{e0, e1, e2}
}

// isVisible reports whether f was tagged visible during the current iteration.
func (e *Engine) isVisible(f faceID) bool {
	return e.faces[f].tag == e.tag
}

// horizonLoop walks the boundary of the visible set, returning the
// counter-clockwise loop of half-edges (each belonging to a visible face,
// each whose twin borders a non-visible face) that separates the cone from
// the rest of the hull.
func (e *Engine) horizonLoop(visible []faceID) []edgeID {
	var start edgeID = nilID
outer:
	for _, f := range visible {
		for _, ed := range e.faceEdges(f) {
			if !e.isVisible(e.edges[e.edges[ed].twin].face) {
				start = ed
				break outer
			}
		}
	}

	loop := []edgeID{start}
	h := e.nextHorizon(start)
	for h != start {
		loop = append(loop, h)
		h = e.nextHorizon(h)
	}
	return loop
}

// nextHorizon advances from a horizon half-edge h (on a visible face, twin
// on a non-visible face) to the next horizon half-edge counter-clockwise.
// It follows h.next within the current visible face; as long as that edge's
// twin still borders another visible face, it crosses into that face (via
// the twin) and continues from its .next, until it lands on an edge whose
// twin borders a non-visible face — the next horizon edge. This walk keeps
// the loop's head(edge_i) == tail(edge_{i+1}) invariant that extrudeIn relies on,
// since both the in-face .next step and the cross-face twin+.next step chain
// through shared vertices by construction of the half-edge cycle.
func (e *Engine) nextHorizon(h edgeID) edgeID {
	h = e.edges[h].next
	for e.isVisible(e.edges[e.edges[h].twin].face) {
		h = e.edges[e.edges[h].twin].next
	}
	return h
}

// redistribute hands every outside-set vertex of every visible (retiring)
// face to the first new face that accepts it via tryAssign. A vertex no new
// face accepts is now interior to the hull and is simply dropped.
func (e *Engine) redistribute(visible []faceID, newFaces []faceID) {
	for _, vf := range visible {
		for _, v := range e.faces[vf].outside {
			for _, nf := range newFaces {
				if e.tryAssign(nf, v) {
					break
				}
			}
		}
	}
}

// maxBuildIterations is a defensive cap converting a would-be infinite loop
// (only reachable via a broken invariant) into a reported error instead of
// hanging the process.
const maxBuildIterations = 1 << 20

// Build repeatedly calls Iterate until the hull is complete, returning the
// number of iterations performed.
func (e *Engine) Build() (int, error) {
	if e.coplane != nil {
		return e.coplane.engine.Build(), nil
	}

	n := 0
	for {
		more, err := e.Iterate()
		if err != nil {
			return n, err
		}
		if !more {
			return n, nil
		}
		n++
		if n > maxBuildIterations {
			return n, errIterationCapExceeded
		}
	}
}
