package heightfield

import (
	"math"

	"github.com/trailmesh/voxelfield/geom"
)

// ledgeInfinity stands in for "no ceiling above" / "no floor below" when
// walking a column's neighbour spans; it only needs to be far enough away
// that no real walkableHeight/walkableClimb comparison mistakes it for a
// real surface.
const ledgeInfinity = math.MaxInt32

// FilterLedgeSpans marks a walkable span unwalkable when it sits on a
// ledge: a drop to a neighbouring column exceeding walkableClimb, or
// accessible neighbours spanning a vertical range greater than
// walkableClimb (spec.md §4.6). Out-of-bounds neighbours are treated as a
// drop of at least walkableClimb+1, and the field boundary is modeled with
// a virtual floor at -walkableClimb so edge columns are correctly
// evaluated against an implicit ground plane.
func FilterLedgeSpans(hf *Heightfield, walkableHeight, walkableClimb int) {
	for z := 0; z < hf.length; z++ {
		for x := 0; x < hf.width; x++ {
			spans := hf.cellAt(x, z).spans
			for i := range spans {
				if spans[i].Area == AreaNull {
					continue
				}

				bottom := int(spans[i].Max)
				top := ledgeInfinity
				if i+1 < len(spans) {
					top = int(spans[i+1].Min)
				}

				minHeight := ledgeInfinity
				accMin, accMax := bottom, bottom

				for dir := 0; dir < 4; dir++ {
					nx := x + geom.DirOffsetX(dir)
					nz := z + geom.DirOffsetY(dir)
					if nx < 0 || nz < 0 || nx >= hf.width || nz >= hf.length {
						minHeight = minInt(minHeight, -walkableClimb-bottom)
						continue
					}

					neighbors := hf.cellAt(nx, nz).spans

					nBottom := -walkableClimb
					nTop := ledgeInfinity
					if len(neighbors) > 0 {
						nTop = int(neighbors[0].Min)
					}
					if minInt(top, nTop)-maxInt(bottom, nBottom) > walkableHeight {
						minHeight = minInt(minHeight, nBottom-bottom)
					}

					for k := range neighbors {
						nBottom = int(neighbors[k].Max)
						nTop = ledgeInfinity
						if k+1 < len(neighbors) {
							nTop = int(neighbors[k+1].Min)
						}
						if minInt(top, nTop)-maxInt(bottom, nBottom) > walkableHeight {
							minHeight = minInt(minHeight, nBottom-bottom)
							if absInt(nBottom-bottom) <= walkableClimb {
								accMin = minInt(accMin, nBottom)
								accMax = maxInt(accMax, nBottom)
							}
						}
					}
				}

				if minHeight < -walkableClimb {
					spans[i].Area = AreaNull
				} else if accMax-accMin > walkableClimb {
					spans[i].Area = AreaNull
				}
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
