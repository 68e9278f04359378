package quickhull

import "fmt"

// validationEpsilon bounds the tolerance for P1/P2's plane-containment
// checks, scaled by the input's largest squared length (at least 1) so the sweep works across
// wildly different point-cloud scales.
const validationEpsilon = 1e-9

// validateManifold implements the manifold-validity sweep (P1-P5 in the
// package's testable properties): every half-edge ring is a 3-cycle with a
// symmetric twin, every live face's plane contains every other hull vertex
// and every input point not still pending in a live face's outside set
// within tolerance, and the live-face subgraph forms
// a closed 2-manifold (Euler's formula, V - E/2 + F = 2). It is run
// unconditionally at the end of every Iterate call on an engine constructed
// via NewEngineWithValidation, and always from tests. A violation indicates
// a programming defect, never a bad input, so callers should panic rather
// than attempt recovery.
func validateManifold(e *Engine) error {
	scale := 1.0
	for _, p := range e.points {
		if l := p.Dot(p); l > scale {
			scale = l
		}
	}
	eps := validationEpsilon * scale

	liveFaces := map[faceID]bool{}
	for f := range e.faces {
		if e.faces[f].live {
			liveFaces[faceID(f)] = true
		}
	}

	for f := range liveFaces {
		edges := e.faceEdges(f)
		for _, ed := range edges {
			if e.edges[e.edges[e.edges[ed].next].next].next != ed {
				return fmt.Errorf("quickhull: half-edge %d ring is not a 3-cycle", ed)
			}
			if e.edges[e.edges[ed].next].face != e.edges[ed].face {
				return fmt.Errorf("quickhull: half-edge %d next does not share its face", ed)
			}

			t := e.edges[ed].twin
			if t == nilID {
				return fmt.Errorf("quickhull: half-edge %d has no twin", ed)
			}
			if e.edges[t].twin != ed {
				return fmt.Errorf("quickhull: half-edge %d twin is not symmetric", ed)
			}
			if e.edges[t].face == e.edges[ed].face {
				return fmt.Errorf("quickhull: half-edge %d twin shares its own face", ed)
			}
			if e.tailOf(ed) != e.edges[t].head {
				return fmt.Errorf("quickhull: half-edge %d tail does not match twin head", ed)
			}
		}
	}

	vertSeen := map[vertexID]bool{}
	edgeCount := 0
	for f := range liveFaces {
		for _, ed := range e.faceEdges(f) {
			edgeCount++
			vertSeen[e.edges[ed].head] = true
		}
	}
	v, ef := len(vertSeen), len(liveFaces)
	if v > 0 && v-edgeCount/2+ef != 2 {
		return fmt.Errorf("quickhull: Euler characteristic V=%d E=%d F=%d != 2", v, edgeCount/2, ef)
	}

	for f := range liveFaces {
		for g := range liveFaces {
			if f == g {
				continue
			}
			for _, ed := range e.faceEdges(g) {
				d := e.distance(f, e.vertexPoint(e.edges[ed].head))
				if d > eps {
					return fmt.Errorf("quickhull: vertex of face %d lies outside face %d plane (d=%g)", g, f, d)
				}
			}
		}
	}

	pending := map[int]bool{}
	for f := range liveFaces {
		for _, v := range e.faces[f].outside {
			pending[e.verts[v].point] = true
		}
	}
	for f := range liveFaces {
		for i, p := range e.points {
			if pending[i] {
				continue
			}
			if d := e.distance(f, p); d > eps {
				return fmt.Errorf("quickhull: input point lies outside face %d plane (d=%g)", f, d)
			}
		}
	}

	return nil
}
