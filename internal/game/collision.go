package game

// Blocked reports whether moving the head into candidate ends the run:
// the cell is outside the grid, or it is occupied by any current segment.
// The check runs against the pre-move body, tail included — stepping into
// the cell the tail is about to vacate still counts as a collision. Wall
// and self are not distinguished; both are terminal.
func Blocked(candidate Position, segments []Position, grid Grid) bool {
	if !grid.Contains(candidate) {
		return true
	}
	for _, seg := range segments {
		if seg == candidate {
			return true
		}
	}
	return false
}
