package grid

import "fmt"

// Coordinate spaces for bounds errors.
const (
	SpaceDot  = "dot"
	SpaceCell = "cell"
)

// OutOfBoundsError reports a coordinate outside the addressable dot or cell
// space. The offending call is rejected and grid state is left untouched.
type OutOfBoundsError struct {
	Space      string
	X, Y       int
	MaxX, MaxY int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s coordinate (%d,%d) out of bounds (max %d,%d)", e.Space, e.X, e.Y, e.MaxX, e.MaxY)
}

// DimensionError reports invalid or mismatched grid dimensions.
type DimensionError struct {
	Width, Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid grid dimensions %dx%d", e.Width, e.Height)
}
