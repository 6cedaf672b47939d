// Package geom holds the small set of value types the heightfield core
// treats as external collaborators: 3D points, axis-aligned boxes,
// triangles, and the handful of integer helpers the filters need.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Vec3 is a 3-component float32 point or direction.
type Vec3 = mgl32.Vec3

// Min returns the component-wise minimum of a and b.
func Min(a, b Vec3) Vec3 {
	return Vec3{minf(a[0], b[0]), minf(a[1], b[1]), minf(a[2], b[2])}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec3) Vec3 {
	return Vec3{maxf(a[0], b[0]), maxf(a[1], b[1]), maxf(a[2], b[2])}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
