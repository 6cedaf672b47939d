package heightfield

// SpanMaxHeight is the largest quantized y-index a Span may carry, matching
// the 13-bit height field the teacher's RcSpan packs its extents into
// (RC_SPAN_HEIGHT_BITS in recast_filter.go).
const SpanMaxHeight = (1 << 13) - 1

// Span is a half-open solid y-interval [Min, Max) with an area
// classification. Min < Max always holds for a Span held in a Cell.
type Span struct {
	Min, Max uint16
	Area     AreaFlags
}

// overlapsOrTouches reports whether s and t share or abut y-space, i.e.
// whether inserting one where the other exists requires merging.
func (s Span) overlapsOrTouches(t Span) bool {
	return s.Min <= t.Max && t.Min <= s.Max
}

// mergeSpans combines s (the span being inserted) with an existing span t
// that overlaps or touches it. The result covers the union of both; it
// takes s's area only when s reaches at least as high as t and s's area has
// at least t's priority, and t's area otherwise.
func mergeSpans(s, t Span) Span {
	out := Span{
		Min: min(s.Min, t.Min),
		Max: max(s.Max, t.Max),
	}
	if s.Max >= t.Max && s.Area.Priority() >= t.Area.Priority() {
		out.Area = s.Area
	} else {
		out.Area = t.Area
	}
	return out
}
