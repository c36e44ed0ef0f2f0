package entity

import (
	"snake-canvas/game/types"
)

// Snake is the body of the player snake. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(body []types.Point, direction types.Direction) *Snake {
	return &Snake{
		Body:      body,
		Direction: direction,
	}
}

// Move shifts every segment one step towards the head, places the new head
// and returns the tail cell that was vacated.
func (s *Snake) Move(newHead types.Point) types.Point {
	tail := s.Body[len(s.Body)-1]
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
	return tail
}

// Grow appends a segment at the tail.
func (s *Snake) Grow(tail types.Point) {
	s.Body = append(s.Body, tail)
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// NextHead returns where the head lands when moving in dir on grid.
func (s *Snake) NextHead(dir types.Direction, grid types.Grid) types.Point {
	head := s.GetHead()
	v := dir.ToPoint()
	return grid.Wrap(types.Point{X: head.X + v.X, Y: head.Y + v.Y})
}

// SetDirection changes the heading unless it would turn the head straight
// back into the neck.
func (s *Snake) SetDirection(dir types.Direction, grid types.Grid) bool {
	if !dir.Valid() {
		return false
	}
	if len(s.Body) > 1 && s.NextHead(dir, grid) == s.Body[1] {
		return false
	}
	s.Direction = dir
	return true
}

// Cells returns a copy of the body as linear indices, head first.
func (s *Snake) Cells(grid types.Grid) []int {
	cells := make([]int, len(s.Body))
	for i, p := range s.Body {
		cells[i] = grid.Index(p)
	}
	return cells
}

// Fits reports whether every segment lies inside grid.
func (s *Snake) Fits(grid types.Grid) bool {
	for _, p := range s.Body {
		if !grid.Contains(p) {
			return false
		}
	}
	return true
}
