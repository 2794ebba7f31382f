package game

// Snake is the player-controlled entity. Segments are ordered tail first;
// the last element is always the head. Invariants: no duplicate positions,
// never empty once created.
type Snake struct {
	Segments []Position
	Heading  Heading
}

// NewSnake returns the starting snake: two body cells and a head stacked in
// the bottom-left column, heading up.
func NewSnake() *Snake {
	return &Snake{
		Segments: []Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
		Heading:  HeadingUp,
	}
}

// Head returns the current head position. Indexing an empty snake is a
// programming error, not a runtime condition; the session never shrinks
// the body.
func (s *Snake) Head() Position {
	return s.Segments[len(s.Segments)-1]
}

// CandidateHead returns the cell the head would enter on the next step.
// Pure; no mutation.
func (s *Snake) CandidateHead() Position {
	dx, dy := s.Heading.Offset()
	head := s.Head()
	return Position{X: head.X + dx, Y: head.Y + dy}
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Position) bool {
	for _, seg := range s.Segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance commits a step to newHead. Without growth every segment slides one
// slot toward the tail and newHead becomes the head (fixed-length window);
// with growth newHead is appended and the tail stays, so length rises by
// exactly one.
func (s *Snake) Advance(newHead Position, grew bool) {
	if grew {
		s.Segments = append(s.Segments, newHead)
		return
	}
	copy(s.Segments, s.Segments[1:])
	s.Segments[len(s.Segments)-1] = newHead
}

// Turn applies a requested heading change and reports whether it was
// accepted. Only perpendicular turns pass: a vertical snake takes only
// left/right, a horizontal snake only up/down. Reversals and same-axis
// requests are ignored, so no input sequence can flip the heading 180
// degrees within one step. The new heading takes effect on the next
// CandidateHead, not retroactively.
func (s *Snake) Turn(want Heading) bool {
	if s.Heading.Vertical() == want.Vertical() {
		return false
	}
	s.Heading = want
	return true
}
