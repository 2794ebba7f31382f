package game

// TileKind is the visual category of one grid cell. Head orientation is
// part of the category so a presenter can pick a directional sprite without
// reading snake state.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileFood
	TileBody
	TileHeadUp
	TileHeadDown
	TileHeadLeft
	TileHeadRight
)

// HeadTile maps a heading to its head tile category.
func HeadTile(h Heading) TileKind {
	switch h {
	case HeadingUp:
		return TileHeadUp
	case HeadingDown:
		return TileHeadDown
	case HeadingLeft:
		return TileHeadLeft
	default:
		return TileHeadRight
	}
}

// AppendLayout writes the full board layout into dst (resized to one entry
// per cell, row-major) and returns it. Pure with respect to game state:
// (segments, heading, food) in, categories out. The head overrides food —
// the two only coincide transiently, never in a committed state.
func AppendLayout(dst []TileKind, snake *Snake, food Food, grid Grid) []TileKind {
	n := grid.Cells()
	if cap(dst) < n {
		dst = make([]TileKind, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = TileEmpty
	}
	if food.Present {
		dst[grid.Index(food.Pos)] = TileFood
	}
	for _, seg := range snake.Segments {
		dst[grid.Index(seg)] = TileBody
	}
	dst[grid.Index(snake.Head())] = HeadTile(snake.Heading)
	return dst
}

// TileUpdate is one changed cell: its position and new category.
type TileUpdate struct {
	Pos  Position
	Kind TileKind
}

// DiffLayouts appends the cells whose category differs between prev and
// next. With prev nil every cell of next is reported, which doubles as the
// initial full repaint.
func DiffLayouts(updates []TileUpdate, prev, next []TileKind, grid Grid) []TileUpdate {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			i := y*grid.Width + x
			if prev != nil && prev[i] == next[i] {
				continue
			}
			updates = append(updates, TileUpdate{Pos: Position{X: x, Y: y}, Kind: next[i]})
		}
	}
	return updates
}
