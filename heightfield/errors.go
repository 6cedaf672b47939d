package heightfield

import "fmt"

// ConfigError reports invalid heightfield construction parameters:
// inverted bounds or non-positive cell dimensions.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("heightfield: invalid configuration: %s", e.Reason)
}

// ArgumentError reports malformed batch-rasterization arguments (nil
// slices, negative offset/stride/count, mismatched area-array length).
// It is always returned before any mutation of the Heightfield.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("heightfield: invalid argument: %s", e.Reason)
}

// OutOfRangeError reports a column index outside [0,W) x [0,L).
type OutOfRangeError struct {
	X, Z int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("heightfield: cell (%d,%d) out of range", e.X, e.Z)
}
