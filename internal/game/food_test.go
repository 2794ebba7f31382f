package game

import "testing"

func TestPlaceFoodAvoidsOccupied(t *testing.T) {
	grid := Grid{Width: 4, Height: 4}
	occupied := []Position{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}}

	for seed := uint64(1); seed <= 200; seed++ {
		r := NewRand(seed)
		pos, ok := PlaceFood(occupied, grid, r)
		if !ok {
			t.Fatalf("Seed %d: expected a placement on a board with free cells", seed)
		}
		if !grid.Contains(pos) {
			t.Fatalf("Seed %d: placement %v outside grid", seed, pos)
		}
		for _, p := range occupied {
			if pos == p {
				t.Fatalf("Seed %d: placement %v on an occupied cell", seed, pos)
			}
		}
	}
}

func TestPlaceFoodSingleFreeCell(t *testing.T) {
	grid := Grid{Width: 3, Height: 3}
	occupied := make([]Position, 0, 8)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			occupied = append(occupied, Position{X: x, Y: y})
		}
	}

	pos, ok := PlaceFood(occupied, grid, NewRand(7))
	if !ok {
		t.Fatal("Expected a placement with one free cell left")
	}
	if pos != (Position{1, 1}) {
		t.Errorf("Expected the only free cell (1,1), got %v", pos)
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	grid := Grid{Width: 2, Height: 2}
	occupied := []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

	if _, ok := PlaceFood(occupied, grid, NewRand(1)); ok {
		t.Error("Expected no placement on a full board")
	}
}

func TestPlaceFoodDuplicateOccupied(t *testing.T) {
	// Duplicate entries in the occupied set must not undercount free cells.
	grid := Grid{Width: 2, Height: 1}
	occupied := []Position{{0, 0}, {0, 0}, {0, 0}}

	pos, ok := PlaceFood(occupied, grid, NewRand(3))
	if !ok {
		t.Fatal("Expected a placement; one cell is free")
	}
	if pos != (Position{1, 0}) {
		t.Errorf("Expected (1,0), got %v", pos)
	}
}
