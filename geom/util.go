package geom

import "cmp"

// Clamp restricts value to [lo, hi].
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// dirOffsetX/dirOffsetY hold the standard 4-connected neighbour offsets,
// indexed by direction 0..3 (west, north, east, south).
var dirOffsetX = [4]int{-1, 0, 1, 0}
var dirOffsetY = [4]int{0, 1, 0, -1}

// DirOffsetX returns the x offset of the 4-connected neighbour in the given
// direction (0..3, wrapping).
func DirOffsetX(direction int) int {
	return dirOffsetX[direction&0x03]
}

// DirOffsetY returns the z/y-in-grid-space offset of the 4-connected
// neighbour in the given direction (0..3, wrapping).
func DirOffsetY(direction int) int {
	return dirOffsetY[direction&0x03]
}
