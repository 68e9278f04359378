package quickhull

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeCorners() []Vec3 {
	var pts []Vec3
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				pts = append(pts, Vec3{x, y, z})
			}
		}
	}
	return pts
}

// triangleWindingOutward checks P5: dot(cross(B-A, C-A), A-centroid) > 0.
func triangleWindingOutward(t *testing.T, pts []Vec3, tris []Triangle) {
	var centroid Vec3
	for _, p := range pts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1.0 / float64(len(pts)))

	for _, tr := range tris {
		a, b, c := pts[tr.A], pts[tr.B], pts[tr.C]
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n.Dot(a.Sub(centroid)), 0.0, "triangle %+v should wind outward", tr)
	}
}

func indexSet(tris []Triangle) map[uint32]bool {
	seen := map[uint32]bool{}
	for _, tr := range tris {
		seen[tr.A], seen[tr.B], seen[tr.C] = true, true, true
	}
	return seen
}

func TestUnitTetrahedron(t *testing.T) {
	pts := []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	e := NewEngineWithValidation()
	require.NoError(t, e.Initialize(pts))
	_, err := e.Build()
	require.NoError(t, err)

	tris := e.Hull()
	assert.Len(t, tris, 4)

	seen := indexSet(tris)
	for i := range pts {
		assert.True(t, seen[uint32(i)], "vertex %d should appear in hull", i)
	}
	triangleWindingOutward(t, pts, tris)
}

func TestUnitCube(t *testing.T) {
	pts := cubeCorners()

	e := NewEngineWithValidation()
	require.NoError(t, e.Initialize(pts))
	_, err := e.Build()
	require.NoError(t, err)

	tris := e.Hull()
	assert.Len(t, tris, 12)
	assert.Len(t, indexSet(tris), 8)
	triangleWindingOutward(t, pts, tris)

	volume := 0.0
	for _, tr := range tris {
		a, b, c := pts[tr.A], pts[tr.B], pts[tr.C]
		volume += a.Dot(b.Cross(c)) / 6.0
	}
	assert.InDelta(t, 1.0, math.Abs(volume), 1e-5)
}

func TestInteriorPointIgnored(t *testing.T) {
	pts := append(cubeCorners(), Vec3{0.5, 0.5, 0.5})

	e := NewEngineWithValidation()
	require.NoError(t, e.Initialize(pts))
	_, err := e.Build()
	require.NoError(t, err)

	tris := e.Hull()
	assert.Len(t, tris, 12)
	assert.False(t, indexSet(tris)[8], "interior point must not appear in the hull")
}

func TestCoplanarSquare(t *testing.T) {
	pts := []Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}

	e := NewEngine()
	require.NoError(t, e.Initialize(pts))
	_, err := e.Build()
	require.NoError(t, err)

	tris := e.Hull()
	assert.Len(t, tris, 2)
	assert.Equal(t, map[uint32]bool{0: true, 1: true, 2: true, 3: true}, indexSet(tris))
}

func TestCollinearInput(t *testing.T) {
	pts := []Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}

	e := NewEngine()
	require.NoError(t, e.Initialize(pts))
	n, err := e.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, e.Hull())
}

func TestTooFewPoints(t *testing.T) {
	e := NewEngine()
	err := e.Initialize([]Vec3{{0, 0, 0}, {1, 0, 0}})
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestExactlyThreePointsIsLegalCoplanar(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.Initialize([]Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}))
	assert.NotNil(t, e.coplane)

	_, err := e.Build()
	require.NoError(t, err)
	assert.Len(t, e.Hull(), 1)
}

func TestRandomCloudDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pts := make([]Vec3, 100)
	for i := range pts {
		pts[i] = Vec3{rng.Float64()*2 - 1, rng.Float64()*2 - 1, rng.Float64()*2 - 1}
	}

	var firstN int
	var firstHull []Triangle
	for run := 0; run < 3; run++ {
		e := NewEngineWithValidation()
		require.NoError(t, e.Initialize(pts))
		n, err := e.Build()
		require.NoError(t, err)

		hull := e.Hull()
		if run == 0 {
			firstN = n
			firstHull = hull
			continue
		}
		assert.Equal(t, firstN, n)
		assert.ElementsMatch(t, firstHull, hull)
	}
}

func TestBuildIdempotent(t *testing.T) {
	pts := cubeCorners()

	e := NewEngineWithValidation()
	require.NoError(t, e.Initialize(pts))
	n1, err := e.Build()
	require.NoError(t, err)
	hull1 := e.Hull()

	n2, err := e.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, n2)
	assert.ElementsMatch(t, hull1, e.Hull())
	assert.Greater(t, n1, 0)
}

func TestClearResetsToFreshEngine(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.Initialize(cubeCorners()))
	_, err := e.Build()
	require.NoError(t, err)

	e.Clear()
	assert.Nil(t, e.Hull())
	assert.Nil(t, e.points)
	assert.Nil(t, e.coplane)
}

func TestDuplicatePointsLegal(t *testing.T) {
	pts := append(cubeCorners(), Vec3{0, 0, 0})

	e := NewEngineWithValidation()
	require.NoError(t, e.Initialize(pts))
	_, err := e.Build()
	require.NoError(t, err)
	assert.NotEmpty(t, e.Hull())
}
