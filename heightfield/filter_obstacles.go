package heightfield

// FilterLowHangingWalkableObstacles fuses small ledges onto stair-like
// surfaces: walking each column bottom to top, a non-walkable span is
// relabeled walkable (copying the area of the span below) whenever its top
// sits within walkableClimb of the previous walkable span's top
// (spec.md §4.4).
func FilterLowHangingWalkableObstacles(hf *Heightfield, walkableClimb int) {
	for z := 0; z < hf.length; z++ {
		for x := 0; x < hf.width; x++ {
			spans := hf.cellAt(x, z).spans
			prevArea := AreaNull
			var prevMax uint16
			prevWalkable := false

			for i := range spans {
				s := &spans[i]
				walkable := s.Area != AreaNull
				if !walkable && prevWalkable && absInt(int(s.Max)-int(prevMax)) < walkableClimb {
					s.Area = prevArea
					walkable = true
				}
				prevWalkable = walkable
				prevArea = s.Area
				prevMax = s.Max
			}
		}
	}
}
