package heightfield

import (
	"github.com/trailmesh/voxelfield/geom"
	"go.uber.org/multierr"
)

// RasterizeTriangleMesh rasterizes an indexed triangle list. verts is a
// flat buffer of interleaved vertex data; vertOffset is the float32 index
// of the first vertex's X component and vertStride is the number of
// float32 elements between consecutive vertices (>=3), letting the caller
// pass an interleaved buffer (position+normal+uv, ...) without copying.
// tris holds vertex indices in triples; areas holds one AreaFlags per
// triangle. A validation failure returns before any Heightfield mutation.
func (hf *Heightfield) RasterizeTriangleMesh(verts []float32, vertOffset, vertStride int, tris []int32, areas []AreaFlags) error {
	if err := validateVertexBuffer(verts, vertOffset, vertStride); err != nil {
		return err
	}
	var errs error
	if len(tris)%3 != 0 {
		errs = multierr.Append(errs, &ArgumentError{Reason: "len(tris) must be a multiple of 3"})
	}
	numTris := len(tris) / 3
	if len(areas) != numTris {
		errs = multierr.Append(errs, &ArgumentError{Reason: "len(areas) must equal the triangle count"})
	}
	numVerts := (len(verts) - vertOffset) / vertStride
	for _, idx := range tris {
		if idx < 0 || int(idx) >= numVerts {
			errs = multierr.Append(errs, &ArgumentError{Reason: "triangle index out of range of the vertex buffer"})
			break
		}
	}
	if errs != nil {
		return errs
	}

	for i := 0; i < numTris; i++ {
		a := vertexAt(verts, vertOffset, vertStride, int(tris[i*3+0]))
		b := vertexAt(verts, vertOffset, vertStride, int(tris[i*3+1]))
		c := vertexAt(verts, vertOffset, vertStride, int(tris[i*3+2]))
		if err := hf.RasterizeTriangle(a, b, c, areas[i]); err != nil {
			return err
		}
	}
	return nil
}

// RasterizeTriangles rasterizes a non-indexed triangle array: every
// consecutive three vertices (respecting vertOffset/vertStride) form one
// triangle, all sharing the given area.
func (hf *Heightfield) RasterizeTriangles(verts []float32, vertOffset, vertStride int, area AreaFlags) error {
	if err := validateVertexBuffer(verts, vertOffset, vertStride); err != nil {
		return err
	}
	numVerts := (len(verts) - vertOffset) / vertStride
	if numVerts%3 != 0 {
		return &ArgumentError{Reason: "vertex count must be a multiple of 3 for non-indexed rasterization"}
	}

	for i := 0; i < numVerts; i += 3 {
		a := vertexAt(verts, vertOffset, vertStride, i)
		b := vertexAt(verts, vertOffset, vertStride, i+1)
		c := vertexAt(verts, vertOffset, vertStride, i+2)
		if err := hf.RasterizeTriangle(a, b, c, area); err != nil {
			return err
		}
	}
	return nil
}

func validateVertexBuffer(verts []float32, vertOffset, vertStride int) error {
	var errs error
	if verts == nil {
		errs = multierr.Append(errs, &ArgumentError{Reason: "verts must not be nil"})
	}
	if vertOffset < 0 {
		errs = multierr.Append(errs, &ArgumentError{Reason: "vertOffset must be >= 0"})
	}
	if vertStride < 3 {
		errs = multierr.Append(errs, &ArgumentError{Reason: "vertStride must be >= 3"})
	}
	if errs != nil {
		return errs
	}
	if vertOffset+3 > len(verts) {
		return &ArgumentError{Reason: "vertOffset leaves no room for a single vertex"}
	}
	if (len(verts)-vertOffset)%vertStride != 0 {
		return &ArgumentError{Reason: "vertex buffer length is not a whole number of strides"}
	}
	return nil
}

func vertexAt(verts []float32, vertOffset, vertStride, index int) geom.Vec3 {
	base := vertOffset + index*vertStride
	return geom.Vec3{verts[base], verts[base+1], verts[base+2]}
}
