package game

// Food is the single pellet on the board. Present is false only when no
// free cell remains (board full).
type Food struct {
	Pos     Position
	Present bool
}

// PlaceFood picks a uniformly random free cell. It collects the free cells
// and indexes into them rather than resampling occupied cells, so placement
// terminates even on a nearly full board. Returns ok=false iff the occupied
// set covers the whole grid.
func PlaceFood(occupied []Position, grid Grid, r *Rand) (Position, bool) {
	taken := make([]bool, grid.Cells())
	free := grid.Cells()
	for _, p := range occupied {
		if grid.Contains(p) && !taken[grid.Index(p)] {
			taken[grid.Index(p)] = true
			free--
		}
	}
	if free == 0 {
		return Position{}, false
	}

	pick := r.Intn(free)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := Position{X: x, Y: y}
			if taken[grid.Index(p)] {
				continue
			}
			if pick == 0 {
				return p, true
			}
			pick--
		}
	}
	// Unreachable: free > 0 guarantees the scan finds a cell.
	return Position{}, false
}
