package game

import "testing"

func testConfig() Config {
	return Config{GridWidth: 12, GridHeight: 12, TickPeriod: 0.4, Seed: 99}
}

func tick(s *Session) {
	s.Update(s.Clock.Period)
}

func TestTickAdvances(t *testing.T) {
	s := NewSession(testConfig(), nil)
	s.Food = Food{Pos: Position{5, 5}, Present: true}

	tick(s)

	want := []Position{{0, 1}, {0, 2}, {0, 3}}
	if len(s.Snake.Segments) != len(want) {
		t.Fatalf("Expected %d segments, got %d", len(want), len(s.Snake.Segments))
	}
	for i, p := range want {
		if s.Snake.Segments[i] != p {
			t.Errorf("Segment %d: expected %v, got %v", i, p, s.Snake.Segments[i])
		}
	}
	if s.Status != StatusRunning {
		t.Errorf("Expected StatusRunning, got %v", s.Status)
	}
	if s.Score != 0 {
		t.Errorf("Expected score 0, got %d", s.Score)
	}
}

func TestTickGrowsOnFood(t *testing.T) {
	s := NewSession(testConfig(), nil)
	s.Food = Food{Pos: Position{0, 3}, Present: true}

	tick(s)

	want := []Position{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
	if len(s.Snake.Segments) != len(want) {
		t.Fatalf("Expected %d segments after eating, got %d", len(want), len(s.Snake.Segments))
	}
	for i, p := range want {
		if s.Snake.Segments[i] != p {
			t.Errorf("Segment %d: expected %v, got %v", i, p, s.Snake.Segments[i])
		}
	}
	if s.Score != 1 {
		t.Errorf("Expected score 1, got %d", s.Score)
	}
	if !s.Food.Present {
		t.Fatal("Expected a replacement pellet")
	}
	if s.Snake.Occupies(s.Food.Pos) {
		t.Errorf("Replacement pellet %v placed on the snake", s.Food.Pos)
	}
}

func TestWallBlocksWithoutMutation(t *testing.T) {
	s := NewSession(testConfig(), nil)
	s.Snake.Segments = []Position{{0, 9}, {0, 10}, {0, 11}}
	s.Food = Food{Pos: Position{5, 5}, Present: true}

	tick(s)

	if s.Status != StatusBlocked {
		t.Fatalf("Expected StatusBlocked at the wall, got %v", s.Status)
	}
	want := []Position{{0, 9}, {0, 10}, {0, 11}}
	for i, p := range want {
		if s.Snake.Segments[i] != p {
			t.Errorf("Segment %d mutated on a blocked tick: expected %v, got %v", i, p, s.Snake.Segments[i])
		}
	}
}

func TestTailCellBlocks(t *testing.T) {
	// Head adjacent to the current tail: moving into the tail is a
	// collision even though that cell is about to vacate.
	s := NewSession(testConfig(), nil)
	s.Snake.Segments = []Position{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	s.Snake.Heading = HeadingDown
	s.Food = Food{Pos: Position{5, 5}, Present: true}

	tick(s)

	if s.Status != StatusBlocked {
		t.Errorf("Expected moving into the tail cell to block, got %v", s.Status)
	}
}

func TestTailAdjacentFreeCellDoesNotBlock(t *testing.T) {
	s := NewSession(testConfig(), nil)
	s.Snake.Segments = []Position{{0, 0}, {0, 1}, {0, 2}, {1, 2}}
	s.Snake.Heading = HeadingRight
	s.Food = Food{Pos: Position{5, 5}, Present: true}

	tick(s)

	if s.Status != StatusRunning {
		t.Fatalf("Expected the move to (2,2) to pass, got %v", s.Status)
	}
	if s.Snake.Head() != (Position{2, 2}) {
		t.Errorf("Expected head (2,2), got %v", s.Snake.Head())
	}
}

func TestBlockedSessionIsFrozen(t *testing.T) {
	s := NewSession(testConfig(), nil)
	s.Snake.Segments = []Position{{0, 9}, {0, 10}, {0, 11}}
	tick(s)
	if s.Status != StatusBlocked {
		t.Fatalf("Expected StatusBlocked, got %v", s.Status)
	}

	if s.Turn(HeadingRight) {
		t.Error("Expected turns to be rejected once blocked")
	}
	headingBefore := s.Snake.Heading
	foodBefore := s.Food
	for i := 0; i < 5; i++ {
		tick(s)
	}
	if s.Snake.Heading != headingBefore || s.Food != foodBefore {
		t.Error("Blocked session mutated state on later ticks")
	}
	if len(s.Snake.Segments) != 3 {
		t.Errorf("Blocked session changed length to %d", len(s.Snake.Segments))
	}
}

func TestBodyStaysUnique(t *testing.T) {
	// Scripted run with turns: after every tick the body must hold no
	// duplicates and length may only change by eating.
	s := NewSession(testConfig(), nil)
	turns := map[int]Heading{
		3: HeadingRight, 6: HeadingUp, 9: HeadingLeft, 12: HeadingUp,
		15: HeadingRight, 20: HeadingDown, 24: HeadingRight,
	}

	prevLen := len(s.Snake.Segments)
	prevScore := s.Score
	for i := 0; i < 40 && s.Status == StatusRunning; i++ {
		if h, ok := turns[i]; ok {
			s.Turn(h)
		}
		tick(s)

		seen := make(map[Position]bool)
		for _, p := range s.Snake.Segments {
			if seen[p] {
				t.Fatalf("Tick %d: duplicate segment %v", i, p)
			}
			seen[p] = true
		}
		if s.Status == StatusBlocked {
			break
		}
		grewBy := len(s.Snake.Segments) - prevLen
		ate := s.Score - prevScore
		if grewBy != ate {
			t.Fatalf("Tick %d: length changed by %d but score by %d", i, grewBy, ate)
		}
		prevLen = len(s.Snake.Segments)
		prevScore = s.Score
	}
}

func TestDeterminism(t *testing.T) {
	// Two sessions with the same seed and inputs stay identical.
	run := func() *Session {
		s := NewSession(testConfig(), nil)
		for i := 0; i < 60 && s.Status == StatusRunning; i++ {
			switch i {
			case 5:
				s.Turn(HeadingRight)
			case 11:
				s.Turn(HeadingUp)
			case 17:
				s.Turn(HeadingLeft)
			}
			tick(s)
		}
		return s
	}

	s1 := run()
	s2 := run()

	if s1.Score != s2.Score {
		t.Errorf("Score mismatch: %d vs %d", s1.Score, s2.Score)
	}
	if s1.Status != s2.Status {
		t.Errorf("Status mismatch: %v vs %v", s1.Status, s2.Status)
	}
	if s1.Food != s2.Food {
		t.Errorf("Food mismatch: %v vs %v", s1.Food, s2.Food)
	}
	if len(s1.Snake.Segments) != len(s2.Snake.Segments) {
		t.Fatalf("Length mismatch: %d vs %d", len(s1.Snake.Segments), len(s2.Snake.Segments))
	}
	for i := range s1.Snake.Segments {
		if s1.Snake.Segments[i] != s2.Snake.Segments[i] {
			t.Errorf("Segment %d mismatch: %v vs %v", i, s1.Snake.Segments[i], s2.Snake.Segments[i])
		}
	}
}

func TestSessionEvents(t *testing.T) {
	bus := NewEventBus()
	var eaten, blocked []Event
	bus.Subscribe(EventFoodEaten, func(e Event) { eaten = append(eaten, e) })
	bus.Subscribe(EventBlocked, func(e Event) { blocked = append(blocked, e) })

	s := NewSession(testConfig(), bus)
	s.Food = Food{Pos: Position{0, 3}, Present: true}
	tick(s)

	if len(eaten) != 1 {
		t.Fatalf("Expected 1 food event, got %d", len(eaten))
	}
	if eaten[0].Pos != (Position{0, 3}) || eaten[0].Score != 1 {
		t.Errorf("Unexpected food event %+v", eaten[0])
	}

	s.Snake.Segments = []Position{{0, 9}, {0, 10}, {0, 11}}
	tick(s)
	if len(blocked) != 1 {
		t.Fatalf("Expected 1 blocked event, got %d", len(blocked))
	}
	if blocked[0].Pos != (Position{0, 12}) {
		t.Errorf("Expected blocked candidate (0,12), got %v", blocked[0].Pos)
	}
}

func TestBoardFullEndsFoodQuietly(t *testing.T) {
	// 2x2 board, snake on three cells, food on the last one. Eating it
	// fills the board: the move commits, food goes absent, board-full fires.
	bus := NewEventBus()
	var full int
	bus.Subscribe(EventBoardFull, func(Event) { full++ })

	cfg := Config{GridWidth: 2, GridHeight: 2, TickPeriod: 0.4, Seed: 5}
	s := NewSession(cfg, bus)
	s.Snake.Segments = []Position{{0, 0}, {1, 0}, {1, 1}}
	s.Snake.Heading = HeadingLeft
	s.Food = Food{Pos: Position{0, 1}, Present: true}

	tick(s)

	if s.Status != StatusRunning {
		t.Fatalf("Expected the winning move to commit, got %v", s.Status)
	}
	if len(s.Snake.Segments) != 4 {
		t.Errorf("Expected the snake to cover the board, length %d", len(s.Snake.Segments))
	}
	if s.Food.Present {
		t.Error("Expected no pellet on a full board")
	}
	if full != 1 {
		t.Errorf("Expected 1 board-full event, got %d", full)
	}
}
