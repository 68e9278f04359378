package quickhull

import "errors"

// ErrTooFewPoints is returned by Initialize when there are fewer than three
// input points — too few to define even a degenerate (coplanar) hull. Sets
// of exactly 3 (or any coplanar/collinear count below the 4 needed for a
// non-degenerate tetrahedron) are legal: the seeder below naturally detects
// them as coplanar (farthestFromPlane finds a zero maximal distance) and
// hands off to the 2-D fallback rather than erroring.
var ErrTooFewPoints = errors.New("quickhull: too few points")

// seed builds the initial tetrahedron (or switches to the 2-D fallback when
// the input turns out to be coplanar) following the six-extreme-point
// construction: farthest pair among the extremes, farthest-from-that-line
// third point, farthest-from-that-plane apex.
func (e *Engine) seed() error {
	if len(e.points) < 3 {
		return ErrTooFewPoints
	}

	extremes := e.sixExtremes()

	i, j := farthestPair(e.points, extremes)
	k := e.farthestFromLine(extremes, i, j)

	normal, offset := planeFromTriangle(e.points[i], e.points[j], e.points[k])
	apex, maxAbsDist := e.farthestFromPlane(normal, offset)
	if maxAbsDist == 0 {
		// No face has been allocated yet: the 3-D arena stays empty and the
		// engine hands off entirely to the 2-D fallback.
		return e.enterCoplanar()
	}

	base := e.createTriangle(vertexID(i), vertexID(j), vertexID(k))

	if e.distance(base, e.vertexPoint(vertexID(apex))) > 0 {
		e.reverse(base)
	}

	tetra := e.extrudeOut(base, vertexID(apex))
	faces := append([]faceID{base}, tetra[:]...)

	used := map[int]bool{i: true, j: true, k: true, apex: true}
	for p := range e.points {
		if used[p] {
			continue
		}
		for _, f := range faces {
			if e.tryAssign(f, vertexID(p)) {
				break
			}
		}
	}

	for _, f := range faces {
		if len(e.faces[f].outside) > 0 {
			e.stack = append(e.stack, f)
		}
	}

	return nil
}

// sixExtremes returns, for each of the six axis directions (-x,+x,-y,+y,-z,+z),
// the index of the extreme point, breaking ties toward the smaller index.
func (e *Engine) sixExtremes() [6]int {
	var ext [6]int
	pts := e.points
	for axis := 0; axis < 3; axis++ {
		minIdx, maxIdx := 0, 0
		for idx := 1; idx < len(pts); idx++ {
			if pts[idx][axis] < pts[minIdx][axis] {
				minIdx = idx
			}
			if pts[idx][axis] > pts[maxIdx][axis] {
				maxIdx = idx
			}
		}
		ext[2*axis] = minIdx
		ext[2*axis+1] = maxIdx
	}
	return ext
}

// farthestPair returns the pair of candidate indices with maximal squared
// distance between them.
func farthestPair(pts []Vec3, candidates [6]int) (int, int) {
	bestI, bestJ := candidates[0], candidates[1]
	bestD := -1.0
	for a := 0; a < len(candidates); a++ {
		for b := a + 1; b < len(candidates); b++ {
			ca, cb := candidates[a], candidates[b]
			d := pts[ca].Sub(pts[cb]).Dot(pts[ca].Sub(pts[cb]))
			if d > bestD {
				bestD = d
				bestI, bestJ = ca, cb
			}
		}
	}
	return bestI, bestJ
}

// farthestFromLine returns the index, among the six extremes (or, if none of
// them yields a positive perpendicular distance, among every input point),
// maximizing squared perpendicular distance to the line through points i, j.
func (e *Engine) farthestFromLine(extremes [6]int, i, j int) int {
	pts := e.points
	a, b := pts[i], pts[j]
	dir := b.Sub(a)

	best, bestD := -1, -1.0
	for _, c := range extremes {
		if c == i || c == j {
			continue
		}
		d := dir.Cross(pts[c].Sub(a)).Dot(dir.Cross(pts[c].Sub(a)))
		if d > bestD {
			bestD = d
			best = c
		}
	}
	if best >= 0 && bestD > 0 {
		return best
	}

	best, bestD = -1, -1.0
	for c := range pts {
		if c == i || c == j {
			continue
		}
		d := dir.Cross(pts[c].Sub(a)).Dot(dir.Cross(pts[c].Sub(a)))
		if d > bestD {
			bestD = d
			best = c
		}
	}
	return best
}

// farthestFromPlane returns the input point index maximizing the absolute
// signed distance to the plane (normal, offset), along with that maximal
// absolute distance. Takes a bare plane rather than a faceID so the seeder
// can test candidate base planes before committing to a face allocation.
func (e *Engine) farthestFromPlane(normal Vec3, offset float64) (int, float64) {
	best, bestAbs := 0, -1.0
	for p, pt := range e.points {
		d := normal.Dot(pt) + offset
		abs := d
		if abs < 0 {
			abs = -abs
		}
		if abs > bestAbs {
			bestAbs = abs
			best = p
		}
	}
	return best, bestAbs
}
