package entity

import "glitch-phone/game/types"

// Snake is the player's body, head first, plus its heading.
// Direction is the committed heading used by the last move; Pending holds
// the latest accepted request waiting for the next move.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Pending   types.Direction
	Dead      bool
}

func NewSnake(startPos types.Point, heading types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: heading,
		Pending:   heading,
	}
}

// Move prepends a new head.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body safe to hand to other goroutines.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// SetDirection buffers dir for the next move unless it reverses the
// committed heading. Later calls overwrite earlier ones.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if s.Dead || !dir.Valid() || dir == s.Direction.Opposite() {
		return false
	}
	s.Pending = dir
	return true
}

// Commit makes the pending heading the committed one and returns its delta.
func (s *Snake) Commit() types.Point {
	s.Direction = s.Pending
	return s.Direction.Delta()
}
