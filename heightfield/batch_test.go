package heightfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailmesh/voxelfield/geom"
)

func TestRasterizeTriangleMeshIndexed(t *testing.T) {
	hf := newTestField(t, 1, 1, 1)
	verts := []float32{
		0, 0.25, 0,
		1, 0.25, 0,
		0, 0.25, 1,
	}
	tris := []int32{0, 1, 2}
	areas := []AreaFlags{AreaWalkable}

	require.NoError(t, hf.RasterizeTriangleMesh(verts, 0, 3, tris, areas))
	assert.Equal(t, 1, hf.SpanCount())
}

func TestRasterizeTriangleMeshRejectsMismatchedAreas(t *testing.T) {
	hf := newTestField(t, 1, 1, 1)
	verts := []float32{0, 0, 0, 1, 0, 0, 0, 0, 1}
	tris := []int32{0, 1, 2}
	err := hf.RasterizeTriangleMesh(verts, 0, 3, tris, nil)
	assert.Error(t, err)
}

func TestRasterizeTriangleMeshRejectsOutOfRangeIndex(t *testing.T) {
	hf := newTestField(t, 1, 1, 1)
	verts := []float32{0, 0, 0, 1, 0, 0, 0, 0, 1}
	tris := []int32{0, 1, 5}
	err := hf.RasterizeTriangleMesh(verts, 0, 3, tris, []AreaFlags{AreaWalkable})
	assert.Error(t, err)
	assert.Equal(t, 0, hf.SpanCount(), "no mutation should occur once validation fails")
}

func TestRasterizeTriangleMeshInterleavedStride(t *testing.T) {
	hf := newTestField(t, 1, 1, 1)
	// Position + a fake normal packed per vertex; stride 6, offset 0.
	verts := []float32{
		0, 0.25, 0, 0, 1, 0,
		1, 0.25, 0, 0, 1, 0,
		0, 0.25, 1, 0, 1, 0,
	}
	tris := []int32{0, 1, 2}
	require.NoError(t, hf.RasterizeTriangleMesh(verts, 0, 6, tris, []AreaFlags{AreaWalkable}))
	assert.Equal(t, 1, hf.SpanCount())
}

func TestRasterizeTrianglesNonIndexed(t *testing.T) {
	hf := newTestField(t, 1, 1, 1)
	verts := []float32{
		0, 0.25, 0,
		1, 0.25, 0,
		0, 0.25, 1,
	}
	require.NoError(t, hf.RasterizeTriangles(verts, 0, 3, AreaWalkable))
	assert.Equal(t, 1, hf.SpanCount())
}

func TestRasterizeTrianglesRejectsPartialTriangle(t *testing.T) {
	hf := newTestField(t, 1, 1, 1)
	verts := []float32{0, 0, 0, 1, 0, 0}
	err := hf.RasterizeTriangles(verts, 0, 3, AreaWalkable)
	assert.Error(t, err)
}

func TestVertexAtRespectsOffsetAndStride(t *testing.T) {
	verts := []float32{
		99, 99, 99, // header the caller wants skipped
		1, 2, 3, 0, 0,
		4, 5, 6, 0, 0,
	}
	v := vertexAt(verts, 3, 5, 1)
	assert.Equal(t, geom.Vec3{4, 5, 6}, v)
}
