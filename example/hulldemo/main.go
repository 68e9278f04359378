package main

import (
	"fmt"
	"math/rand"

	"github.com/akmonengine/quickhull"
)

// randomCloud generates n points uniformly distributed in the unit cube
// from a fixed seed, so repeated runs build the same hull.
func randomCloud(n int, seed int64) []quickhull.Vec3 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]quickhull.Vec3, n)
	for i := range pts {
		pts[i] = quickhull.Vec3{rng.Float64(), rng.Float64(), rng.Float64()}
	}
	return pts
}

// windingOK reports whether every triangle's normal points away from the
// point cloud's centroid, i.e. the hull's winding is outward (P5).
func windingOK(pts []quickhull.Vec3, tris []quickhull.Triangle) bool {
	var centroid quickhull.Vec3
	for _, p := range pts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1.0 / float64(len(pts)))

	for _, tr := range tris {
		a, b, c := pts[tr.A], pts[tr.B], pts[tr.C]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Dot(a.Sub(centroid)) <= 0 {
			return false
		}
	}
	return true
}

func main() {
	pts := randomCloud(2000, 1)

	e := quickhull.NewEngine()
	if err := e.Initialize(pts); err != nil {
		fmt.Println("initialize failed:", err)
		return
	}

	n, err := e.Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	tris := e.Hull()
	fmt.Printf("built hull from %d points in %d iterations\n", len(pts), n)
	fmt.Printf("hull has %d triangles, outward winding: %v\n", len(tris), windingOK(pts, tris))
}
