package heightfield

// AreaFlags is a small opaque tag distinguishing walkable surfaces, holes,
// and user-defined area classes. Values order by simple numeric priority;
// higher wins on merge.
type AreaFlags uint8

const (
	// AreaNull marks unwalkable space (a hole in the solid field).
	AreaNull AreaFlags = 0
	// AreaWalkable is the default walkable surface classification.
	AreaWalkable AreaFlags = 63
)

// Priority returns the merge priority of an area; AreaNull always sorts
// lowest.
func (a AreaFlags) Priority() int {
	return int(a)
}
