package game

// Status is the session's lifecycle state. A blocked session stops mutating
// but keeps its final board so collaborators can render it.
type Status int

const (
	StatusRunning Status = iota
	StatusBlocked // snake hit a wall or itself; state is frozen
)

// Session owns one run of the game: grid, snake, food, clock, and score.
// All mutation happens inside Update on the caller's goroutine; there is
// exactly one mutator per tick.
type Session struct {
	Grid   Grid
	Snake  *Snake
	Food   Food
	Clock  Clock
	Status Status
	Score  int

	rand  *Rand
	bus   *EventBus
	tiles []TileKind // reusable layout buffer for Tiles
}

// NewSession builds a fresh session from cfg. The bus may be nil when no
// collaborator cares about events (tests, headless runs).
func NewSession(cfg Config, bus *EventBus) *Session {
	s := &Session{
		Grid:  Grid{Width: cfg.GridWidth, Height: cfg.GridHeight},
		Snake: NewSnake(),
		Clock: NewClock(cfg.TickPeriod),
		rand:  NewRand(cfg.Seed),
		bus:   bus,
	}
	if pos, ok := PlaceFood(s.Snake.Segments, s.Grid, s.rand); ok {
		s.Food = Food{Pos: pos, Present: true}
	}
	return s
}

// Turn requests a heading change and reports whether it was accepted.
// Requests may arrive at any wall-clock time; the new heading only matters
// at the next step, which reads it once. Between steps the last accepted
// request wins.
func (s *Session) Turn(want Heading) bool {
	if s.Status != StatusRunning {
		return false
	}
	return s.Snake.Turn(want)
}

// Update feeds elapsed frame time to the clock and runs at most one step
// when it fires.
func (s *Session) Update(dt float64) {
	if !s.Clock.Tick(dt) {
		return
	}
	s.step()
}

// step advances the simulation by one tick: candidate head, collision
// check, food check, commit. On collision nothing is mutated and the
// session flips to StatusBlocked.
func (s *Session) step() {
	if s.Status != StatusRunning {
		return
	}

	candidate := s.Snake.CandidateHead()
	if Blocked(candidate, s.Snake.Segments, s.Grid) {
		s.Status = StatusBlocked
		s.emit(Event{Type: EventBlocked, Pos: candidate, Score: s.Score})
		return
	}

	grew := s.Food.Present && candidate == s.Food.Pos
	s.Snake.Advance(candidate, grew)
	if !grew {
		return
	}

	s.Score++
	s.emit(Event{Type: EventFoodEaten, Pos: candidate, Score: s.Score})

	// Replace the pellet. A full board is not an error: the move above
	// still committed, the pellet just stays absent.
	if pos, ok := PlaceFood(s.Snake.Segments, s.Grid, s.rand); ok {
		s.Food = Food{Pos: pos, Present: true}
	} else {
		s.Food = Food{}
		s.emit(Event{Type: EventBoardFull, Score: s.Score})
	}
}

func (s *Session) emit(e Event) {
	if s.bus != nil {
		s.bus.Emit(e)
	}
}

// Tiles returns the current board as per-cell visual categories, row-major
// from (0,0). The slice is reused across calls; callers that keep it must
// copy.
func (s *Session) Tiles() []TileKind {
	s.tiles = AppendLayout(s.tiles[:0], s.Snake, s.Food, s.Grid)
	return s.tiles
}
