package quickhull

import "github.com/akmonengine/quickhull/hull2d"

// coplanarState holds the 2-D fallback machinery used when the seeder finds
// every input point within the base plane: the 3-D arena stays empty and
// hull enumeration is driven entirely by a hull2d.Engine working on the
// plane's own 2-D basis.
type coplanarState struct {
	origin Vec3
	u, v   Vec3
	engine *hull2d.Engine
}

// enterCoplanar builds an orthonormal basis for the plane spanned by the
// input (origin at points[0], u along points[1]-points[0], v completing the
// basis via the plane normal), projects every input point into that basis,
// and hands the projection to a 2-D gift-wrapping engine. Returns
// ErrTooFewPoints if the projected set has fewer than three points (mirrors
// the 3-D check, since a coplanar set still needs 3 points for any hull).
func (e *Engine) enterCoplanar() error {
	pts := e.points

	var normal Vec3
	p0, p1 := pts[0], pts[1]
	dir := p1.Sub(p0)
	for i := 2; i < len(pts); i++ {
		n := dir.Cross(pts[i].Sub(p0))
		if n.Dot(n) != 0 {
			normal = n
			break
		}
	}

	cs := &coplanarState{origin: p0}
	if n := normal.Len(); n > 0 {
		normal = normal.Mul(1.0 / n)
	}
	u := dir
	if l := u.Len(); l > 0 {
		u = u.Mul(1.0 / l)
	}
	w := u.Cross(normal)
	cs.u, cs.v = u, w

	proj := make([]hull2d.Vec2, len(pts))
	for i, p := range pts {
		rel := p.Sub(p0)
		proj[i] = hull2d.Vec2{rel.Dot(u), rel.Dot(w)}
	}

	cs.engine = hull2d.NewEngine()
	if err := cs.engine.Initialize(proj); err != nil {
		return ErrTooFewPoints
	}
	if normal.Dot(normal) == 0 {
		// No plane normal was found (collinear input): the degenerate wrap
		// yields no triangles, so it is completed here and Build/Iterate
		// report no iterations.
		cs.engine.Build()
	}

	e.coplane = cs
	return nil
}

// Iterate2D-equivalent dispatch lives in Iterate/Build (iterate.go); hull
// returns the 2-D engine's polygon fanned from its first vertex into
// triangles, per the coplanar fallback's triangulation rule.
func (cs *coplanarState) hull() []Triangle {
	loop := cs.engine.Hull()
	if len(loop) < 3 {
		return nil
	}

	tris := make([]Triangle, 0, len(loop)-2)
	for i := 2; i < len(loop); i++ {
		tris = append(tris, Triangle{A: loop[0], B: loop[i-1], C: loop[i]})
	}
	return tris
}
