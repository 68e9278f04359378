package quickhull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSixExtremes(t *testing.T) {
	e := &Engine{points: []Vec3{
		{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}, {0.1, 0.1, 0.1},
	}}
	ext := e.sixExtremes()
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, ext[:])
}

func TestSixExtremesTieBreaksToSmallerIndex(t *testing.T) {
	e := &Engine{points: []Vec3{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}}}
	ext := e.sixExtremes()
	assert.Equal(t, 0, ext[0], "min x tie should break to the smaller index")
}

func TestFarthestPair(t *testing.T) {
	pts := []Vec3{{0, 0, 0}, {10, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 0}, {0, 0, 0}}
	i, j := farthestPair(pts, [6]int{0, 1, 2, 3, 4, 5})
	assert.ElementsMatch(t, []int{1, 3}, []int{i, j})
}

func TestFarthestFromLine(t *testing.T) {
	e := &Engine{points: []Vec3{{0, 0, 0}, {1, 0, 0}, {0.5, 0.1, 0}, {0.5, 2, 0}}}
	k := e.farthestFromLine([6]int{0, 1, 2, 3, 0, 0}, 0, 1)
	assert.Equal(t, 3, k)
}

func TestSeedBuildsValidTetrahedron(t *testing.T) {
	e := NewEngineWithValidation()
	pts := cubeCorners()
	require.NoError(t, e.Initialize(pts))
	assert.NotEmpty(t, e.stack)
	assert.Len(t, e.faces, 4)
}

func TestSeedDetectsCoplanar(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.Initialize([]Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}))
	assert.NotNil(t, e.coplane)
	assert.Empty(t, e.faces)
}
