// Package heightfield implements the voxelization and solid-heightfield
// filtering core of a navigation-mesh toolchain: conservative triangle
// rasterization into a column-oriented sparse voxel grid, the span-merge
// algebra that keeps each column a sorted, non-overlapping partition of
// solid y-space, and the three mutating filters that post-process it.
package heightfield

import (
	"math"

	"github.com/trailmesh/voxelfield/geom"
	"go.uber.org/zap"
)

// Heightfield is an axis-aligned grid of Cells. It owns every Cell and
// every Span they hold; a Heightfield is not safe for concurrent mutation,
// but two Heightfields may be rasterized into concurrently (spec.md §5).
type Heightfield struct {
	width, height, length int
	bounds                geom.BBox3
	cellSize, cellHeight  float32
	cells                 []Cell
	logger                *zap.Logger
}

// Option configures optional Heightfield construction parameters.
type Option func(*Heightfield)

// WithLogger attaches a structured logger used for the "should never
// happen" diagnostics spec.md §7 describes (currently: zero-thickness
// span suppression). A nil logger, or omitting this option, disables
// diagnostics silently via zap.NewNop.
func WithLogger(logger *zap.Logger) Option {
	return func(hf *Heightfield) {
		if logger != nil {
			hf.logger = logger
		}
	}
}

// New constructs a Heightfield spanning [min,max] in world space, with the
// given XZ cell footprint and Y cell thickness. max is snapped upward so
// that the grid exactly tiles the requested minimum volume (spec.md §3).
func New(min, max geom.Vec3, cellSize, cellHeight float32, opts ...Option) (*Heightfield, error) {
	if cellSize <= 0 {
		return nil, &ConfigError{Reason: "cellSize must be > 0"}
	}
	if cellHeight <= 0 {
		return nil, &ConfigError{Reason: "cellHeight must be > 0"}
	}
	if min[0] > max[0] || min[1] > max[1] || min[2] > max[2] {
		return nil, &ConfigError{Reason: "min must be componentwise <= max"}
	}

	w := ceilDiv(max[0]-min[0], cellSize)
	h := ceilDiv(max[1]-min[1], cellHeight)
	l := ceilDiv(max[2]-min[2], cellSize)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if l < 1 {
		l = 1
	}

	snapped := max
	snapped[0] = min[0] + float32(w)*cellSize
	snapped[1] = min[1] + float32(h)*cellHeight
	snapped[2] = min[2] + float32(l)*cellSize

	hf := &Heightfield{
		width:      w,
		height:     h,
		length:     l,
		bounds:     geom.BBox3{Min: min, Max: snapped},
		cellSize:   cellSize,
		cellHeight: cellHeight,
		cells:      make([]Cell, w*l),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(hf)
	}
	return hf, nil
}

func ceilDiv(extent, step float32) int {
	return int(math.Ceil(float64(extent / step)))
}

// Width returns the grid's extent along X, in cells.
func (hf *Heightfield) Width() int { return hf.width }

// Height returns the grid's extent along Y, in cells.
func (hf *Heightfield) Height() int { return hf.height }

// Length returns the grid's extent along Z, in cells.
func (hf *Heightfield) Length() int { return hf.length }

// Bounds returns the (possibly snapped) world-space bounding box.
func (hf *Heightfield) Bounds() geom.BBox3 { return hf.bounds }

// CellSize returns the XZ footprint of one voxel.
func (hf *Heightfield) CellSize() float32 { return hf.cellSize }

// CellHeight returns the Y thickness of one voxel.
func (hf *Heightfield) CellHeight() float32 { return hf.cellHeight }

// Cell returns the column at (x, z), or an OutOfRangeError if it falls
// outside [0,Width) x [0,Length).
func (hf *Heightfield) Cell(x, z int) (*Cell, error) {
	if x < 0 || x >= hf.width || z < 0 || z >= hf.length {
		return nil, &OutOfRangeError{X: x, Z: z}
	}
	return hf.cellAt(x, z), nil
}

// cellAt indexes the column array without bounds checking; callers within
// the package have already validated x, z against the grid extents.
func (hf *Heightfield) cellAt(x, z int) *Cell {
	return &hf.cells[z*hf.width+x]
}

// Cells iterates every column in row-major order (z outermost, matching
// the internal storage layout), stopping early if yield returns false.
func (hf *Heightfield) Cells(yield func(x, z int, c *Cell) bool) {
	for z := 0; z < hf.length; z++ {
		for x := 0; x < hf.width; x++ {
			if !yield(x, z, hf.cellAt(x, z)) {
				return
			}
		}
	}
}

// SpanCount returns the total number of non-null spans across every
// column.
func (hf *Heightfield) SpanCount() int {
	count := 0
	for i := range hf.cells {
		for _, s := range hf.cells[i].spans {
			if s.Area != AreaNull {
				count++
			}
		}
	}
	return count
}
