package snake

import "fmt"

// Grid dimensions in cells.
const (
	Width  = 40
	Height = 30
)

// Point is a grid cell. Y grows downward.
type Point struct {
	X int
	Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds reports whether p lies within [0,Width) x [0,Height).
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}
