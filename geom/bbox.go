package geom

// BBox3 is an axis-aligned bounding box in world space.
type BBox3 struct {
	Min, Max Vec3
}

// Overlapping reports whether a and b intersect, treating both as closed
// intervals on every axis (touching boxes overlap).
func Overlapping(a, b BBox3) bool {
	return a.Min[0] <= b.Max[0] && a.Max[0] >= b.Min[0] &&
		a.Min[1] <= b.Max[1] && a.Max[1] >= b.Min[1] &&
		a.Min[2] <= b.Max[2] && a.Max[2] >= b.Min[2]
}
