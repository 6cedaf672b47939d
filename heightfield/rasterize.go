package heightfield

import (
	"math"

	"github.com/trailmesh/voxelfield/geom"
	"go.uber.org/zap"
)

// RasterizeTriangle performs conservative voxelization of one triangle
// (spec.md §4.2): for every column whose XZ footprint intersects the
// triangle's projection, it computes the integer y-interval the triangle
// fragment covers in that column and inserts a Span with the given area.
//
// The row/column clip stages never allocate: they reuse four fixed
// [7]vertex scratch buffers for the lifetime of the call. Inserting a span
// into a Cell may grow or replace that Cell's span slice.
func (hf *Heightfield) RasterizeTriangle(a, b, c geom.Vec3, area AreaFlags) error {
	triBB := geom.Triangle3{A: a, B: b, C: c}.BoundingBox()
	if !geom.Overlapping(triBB, hf.bounds) {
		return nil
	}

	w := hf.width
	l := hf.length
	mn := hf.bounds.Min
	cs := hf.cellSize
	ch := hf.cellHeight
	byTop := hf.bounds.Max[1] - mn[1]

	z0 := clampInt(int(math.Floor(float64((triBB.Min[2]-mn[2])/cs))), 0, l-1)
	z1 := clampInt(int(math.Floor(float64((triBB.Max[2]-mn[2])/cs))), 0, l-1)

	var in, row, p1, p2 clipVerts
	copy(in[0:3], a[:])
	copy(in[3:6], b[:])
	copy(in[6:9], c[:])
	nvIn := 3

	for z := z0; z <= z1; z++ {
		cellZLo := mn[2] + float32(z)*cs
		nRow := clipHalfPlane(&in, nvIn, &row, 0, 1, -cellZLo)
		nRow = clipHalfPlane(&row, nRow, &p1, 0, -1, cellZLo+cs)
		if nRow < 3 {
			continue
		}

		minX, maxX := p1[0], p1[0]
		for v := 1; v < nRow; v++ {
			x := p1[v*3]
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		x0 := clampInt(int(math.Floor(float64((minX-mn[0])/cs))), 0, w-1)
		x1 := clampInt(int(math.Floor(float64((maxX-mn[0])/cs))), 0, w-1)

		for x := x0; x <= x1; x++ {
			cellXLo := mn[0] + float32(x)*cs
			nCol := clipHalfPlane(&p1, nRow, &row, 1, 0, -cellXLo)
			nCol = clipHalfPlane(&row, nCol, &p2, -1, 0, cellXLo+cs)
			if nCol < 3 {
				continue
			}

			yMin, yMax := p2[1], p2[1]
			for v := 1; v < nCol; v++ {
				y := p2[v*3+1]
				if y < yMin {
					yMin = y
				}
				if y > yMax {
					yMax = y
				}
			}
			yMin -= mn[1]
			yMax -= mn[1]

			if yMax < 0 || yMin > byTop {
				continue
			}
			if yMin < 0 {
				yMin = 0
			}
			if yMax > byTop {
				yMax = byTop
			}

			spanMin := clampU16(uint16(math.Floor(float64(yMin/ch))), 0, uint16(hf.height))
			spanMax := clampU16(uint16(math.Ceil(float64(yMax/ch))), spanMin+1, uint16(hf.height))
			if spanMin >= spanMax {
				hf.logger.Warn("heightfield: suppressing zero-thickness span",
					zap.Int("x", x), zap.Int("z", z),
					zap.Float32("yMin", yMin), zap.Float32("yMax", yMax))
				continue
			}

			hf.cellAt(x, z).AddSpan(Span{Min: spanMin, Max: spanMax, Area: area})
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampU16(v, lo, hi uint16) uint16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
