package game

// Position is a cell on the grid. x grows rightward, y grows upward,
// both 0-indexed.
type Position struct {
	X, Y int
}

// Heading is the snake's movement direction. Exactly one is active at a time.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Offset returns the unit step for the heading.
func (h Heading) Offset() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, 1
	case HeadingDown:
		return 0, -1
	case HeadingLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Vertical reports whether the heading runs along the y axis.
func (h Heading) Vertical() bool {
	return h == HeadingUp || h == HeadingDown
}

// Grid is the fixed playfield: Width x Height cells, no wraparound.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total cell count.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Index returns the flat index for p in row-major order. Used by the tile
// layout and the food placement occupancy scan.
func (g Grid) Index(p Position) int {
	return p.Y*g.Width + p.X
}
