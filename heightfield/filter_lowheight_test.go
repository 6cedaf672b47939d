package heightfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterWalkableLowHeightSpansCullsGap(t *testing.T) {
	hf := newTestField(t, 1, 10, 1)
	cell, err := hf.Cell(0, 0)
	require.NoError(t, err)
	cell.spans = []Span{
		{Min: 0, Max: 2, Area: AreaWalkable},
		{Min: 3, Max: 5, Area: AreaWalkable},
	}

	FilterWalkableLowHeightSpans(hf, 1)

	assert.Equal(t, AreaNull, cell.spans[0].Area)
	assert.Equal(t, AreaWalkable, cell.spans[1].Area)
}

func TestFilterWalkableLowHeightSpansKeepsClearGap(t *testing.T) {
	hf := newTestField(t, 1, 10, 1)
	cell, err := hf.Cell(0, 0)
	require.NoError(t, err)
	cell.spans = []Span{
		{Min: 0, Max: 2, Area: AreaWalkable},
		{Min: 5, Max: 7, Area: AreaWalkable},
	}

	FilterWalkableLowHeightSpans(hf, 1)

	assert.Equal(t, AreaWalkable, cell.spans[0].Area)
}

func TestFilterWalkableLowHeightSpansTopSpanUntouched(t *testing.T) {
	hf := newTestField(t, 1, 10, 1)
	cell, err := hf.Cell(0, 0)
	require.NoError(t, err)
	cell.spans = []Span{
		{Min: 0, Max: 2, Area: AreaWalkable},
	}

	FilterWalkableLowHeightSpans(hf, 1)

	assert.Equal(t, AreaWalkable, cell.spans[0].Area)
}
