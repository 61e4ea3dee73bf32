package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPointInNavMesh_M1(t *testing.T) {
	m, _ := meshM1(t)

	assert.False(t, m.IsPointInNavMesh(Point{25, 25}), "inside the hole")
	assert.True(t, m.IsPointInNavMesh(Point{10, 10}), "inside the band")
	assert.True(t, m.IsPointInNavMesh(Point{50, 50}), "outer corner")
	assert.False(t, m.IsPointInNavMesh(Point{50.0000001, 25}), "just outside the outer edge")
}

func TestLocatorConsistency(t *testing.T) {
	m, _ := meshM1(t)

	pts := []Point{{25, 25}, {10, 10}, {50, 50}, {50.0000001, 25}, {0, 0}, {5, 48}}
	for _, p := range pts {
		got := m.IsPointInNavMesh(p)
		want := m.findTriangleContaining(p) != nil
		assert.Equal(t, want, got, "IsPointInNavMesh disagreed with findTriangleContaining for %v", p)
	}
}

func TestFindTriangleContaining_FirstMatchWins(t *testing.T) {
	m, _ := meshM1(t)

	// (10, 10) sits exactly on the shared diagonal A-E between two
	// triangles; the locator must deterministically return whichever
	// comes first in allTriangles.
	tri := m.findTriangleContaining(Point{10, 10})
	if assert.NotNil(t, tri) {
		assert.Same(t, m.allTriangles[1], tri)
	}
}
