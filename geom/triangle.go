package geom

// Triangle3 is a triangle in world space, vertices in no particular winding.
type Triangle3 struct {
	A, B, C Vec3
}

// BoundingBox returns the tight axis-aligned bounding box of the triangle.
func (t Triangle3) BoundingBox() BBox3 {
	lo := Min(Min(t.A, t.B), t.C)
	hi := Max(Max(t.A, t.B), t.C)
	return BBox3{Min: lo, Max: hi}
}
