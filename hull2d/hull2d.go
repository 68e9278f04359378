// Package hull2d implements a 2-D convex hull by gift wrapping (Jarvis
// march): starting from the lexicographically minimal point, it repeatedly
// picks the candidate making the smallest right turn from the current hull
// point, in O(n*h) time for h hull vertices.
//
// It exists as the quickhull package's fallback for coplanar (or
// collinear) 3-D input: the caller projects the input onto a plane basis
// and hands the 2-D coordinates here.
package hull2d

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the 2-D point type consumed by this package.
type Vec2 = mgl64.Vec2

// ErrTooFewPoints is returned by Initialize when fewer than three points
// are given; no hull is meaningful below that.
var ErrTooFewPoints = errors.New("hull2d: too few points")

// Engine is a gift-wrapping 2-D convex hull builder. The zero value is an
// empty engine, the same as the one NewEngine returns.
type Engine struct {
	points []Vec2
	hull   []uint32
	done   bool
	tag    int
}

// NewEngine returns a ready-to-use, empty Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Clear drops all internal state. After Clear, the engine is equivalent to
// a freshly constructed one.
func (e *Engine) Clear() {
	*e = Engine{}
}

// Initialize borrows points for the engine's lifetime and seeds the hull
// with the lexicographically minimal point (smallest x, ties broken by
// smallest y).
func (e *Engine) Initialize(points []Vec2) error {
	e.Clear()
	if len(points) < 3 {
		return ErrTooFewPoints
	}
	e.points = points
	e.tag = -1

	minIdx := 0
	for i := 1; i < len(points); i++ {
		p, m := points[i], points[minIdx]
		if p.X() < m.X() || (p.X() == m.X() && p.Y() < m.Y()) {
			minIdx = i
		}
	}
	e.hull = []uint32{uint32(minIdx)}
	return nil
}

// Build repeatedly calls Iterate until the hull is complete, returning the
// number of iterations performed.
func (e *Engine) Build() int {
	n := 0
	for e.Iterate() {
		n++
	}
	return n
}

// Iterate performs one gift-wrap step: from the current hull's last point
// p0, scan every other point for the one making the tightest right turn
// (or, if collinear with the current candidate, the farther one) and
// appends it. Returns false once the wrap has returned to the seed point.
func (e *Engine) Iterate() bool {
	if e.done {
		return false
	}
	e.tag++

	p0Idx := e.hull[len(e.hull)-1]
	p0 := e.points[p0Idx]

	p1Idx := uint32(0)
	for i := range e.points {
		if uint32(i) != p0Idx {
			p1Idx = uint32(i)
			break
		}
	}
	p1 := e.points[p1Idx]

	for i, q := range e.points {
		if uint32(i) == p0Idx || uint32(i) == p1Idx {
			continue
		}

		n01 := Vec2{p0.Y() - p1.Y(), p1.X() - p0.X()}
		d := n01.X()*(q.X()-p0.X()) + n01.Y()*(q.Y()-p0.Y())

		switch {
		case d == 0:
			v01 := p1.Sub(p0)
			v02 := q.Sub(p0)
			if v02.Dot(v02) > v01.Dot(v01) {
				p1Idx, p1 = uint32(i), q
			}
		case d < 0:
			p1Idx, p1 = uint32(i), q
		}
	}

	if p1Idx == e.hull[0] {
		e.done = true
	} else {
		e.hull = append(e.hull, p1Idx)
	}
	return true
}

// Hull returns the ordered index list (into the points slice passed to
// Initialize) of the vertices making up the convex hull, wound
// counter-clockwise. It has at most 2 entries for collinear or
// single-point input.
func (e *Engine) Hull() []uint32 {
	return e.hull
}
