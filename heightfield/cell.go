package heightfield

// Cell owns the ordered, non-overlapping span list for one (x,z) column.
// Spans are kept in a plain growable slice rather than a linked list: the
// filters walk every column sequentially, and a slice keeps that walk
// cache-friendly (spec.md §9 Design Notes).
type Cell struct {
	spans []Span
}

// Spans returns the column's spans in ascending Min order. The returned
// slice aliases the Cell's storage and must not be mutated by the caller
// except through the Area field of each Span (filters relabel area in
// place but never move a span's bounds).
func (c *Cell) Spans() []Span {
	return c.spans
}

// Len returns the number of spans currently stored in the column.
func (c *Cell) Len() int {
	return len(c.spans)
}

// AddSpan inserts s into the column, merging it with any span it overlaps
// or touches per the area-priority union rule in spec.md §4.3:
//
//  1. Find the first existing span whose Max >= s.Min.
//  2. If none exists, or that span's Min > s.Max, s doesn't touch anything
//     and is inserted on its own.
//  3. Otherwise absorb every consecutive touching/overlapping span into an
//     accumulator, left to right, and splice the merged result in place of
//     the run.
func (c *Cell) AddSpan(s Span) {
	spans := c.spans
	start := 0
	for start < len(spans) && spans[start].Max < s.Min {
		start++
	}
	if start >= len(spans) || spans[start].Min > s.Max {
		c.insertAt(start, s)
		return
	}

	end := start
	acc := s
	for end < len(spans) && spans[end].overlapsOrTouches(acc) {
		acc = mergeSpans(acc, spans[end])
		end++
	}

	merged := make([]Span, 0, len(spans)-(end-start)+1)
	merged = append(merged, spans[:start]...)
	merged = append(merged, acc)
	merged = append(merged, spans[end:]...)
	c.spans = merged
}

func (c *Cell) insertAt(i int, s Span) {
	c.spans = append(c.spans, Span{})
	copy(c.spans[i+1:], c.spans[i:])
	c.spans[i] = s
}
