package heightfield

// maxClipVerts is the largest vertex count a clip buffer ever needs to
// hold. A triangle clipped against the four planes bounding one grid
// column can grow to at most 7 vertices (spec.md §4.1).
const maxClipVerts = 7

// clipVerts is a fixed-capacity scratch polygon: up to maxClipVerts points,
// each 3 float32 (x, y, z), stored flat to avoid per-triangle heap
// allocation on the rasterization hot path (spec.md §5 Memory).
type clipVerts [maxClipVerts * 3]float32

// clipHalfPlane clips the convex polygon in[0:n] against the half-plane
// ax*x + az*z + d >= 0 using Sutherland-Hodgman, writing the result to out
// and returning its vertex count. Only the x/z components of each vertex
// participate in the plane test; y is linearly interpolated on crossings.
//
// A vertex exactly on the plane (s == 0) counts as inside. A degenerate
// edge where both endpoints lie on the plane emits only its first
// endpoint, matching spec.md §4.1's edge-case rule. An edge between an
// on-plane vertex and an outside vertex also emits its crossing point,
// which coincides with the on-plane vertex, so a polygon that only touches
// the plane along an edge or at a corner still yields a (degenerate)
// polygon of at least three vertices.
func clipHalfPlane(in *clipVerts, n int, out *clipVerts, ax, az, d float32) int {
	if n == 0 {
		return 0
	}

	dist := [maxClipVerts]float32{}
	for i := 0; i < n; i++ {
		v := in[i*3 : i*3+3]
		dist[i] = ax*v[0] + az*v[2] + d
	}

	m := 0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		si, sj := dist[i], dist[j]
		vi := in[i*3 : i*3+3]

		if si >= 0 {
			out[m*3+0], out[m*3+1], out[m*3+2] = vi[0], vi[1], vi[2]
			m++
		}

		// An edge crosses when exactly one endpoint is inside (s >= 0).
		if (si >= 0) != (sj >= 0) {
			t := si / (si - sj)
			vj := in[j*3 : j*3+3]
			out[m*3+0] = vi[0] + t*(vj[0]-vi[0])
			out[m*3+1] = vi[1] + t*(vj[1]-vi[1])
			out[m*3+2] = vi[2] + t*(vj[2]-vi[2])
			m++
		}
	}
	return m
}
