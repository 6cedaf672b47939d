package heightfield

// FilterWalkableLowHeightSpans culls spans that don't have enough
// clearance above them for an agent to occupy: for every pair of
// consecutive spans in a column, if the gap between them is at most
// walkableHeight, the lower span is marked AreaNull. The topmost span in
// each column is left alone (infinite headroom is assumed above it),
// per spec.md §4.5.
func FilterWalkableLowHeightSpans(hf *Heightfield, walkableHeight int) {
	for z := 0; z < hf.length; z++ {
		for x := 0; x < hf.width; x++ {
			spans := hf.cellAt(x, z).spans
			for i := 0; i+1 < len(spans); i++ {
				gap := int(spans[i+1].Min) - int(spans[i].Max)
				if gap <= walkableHeight {
					spans[i].Area = AreaNull
				}
			}
		}
	}
}
