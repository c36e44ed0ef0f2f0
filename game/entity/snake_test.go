package entity

import (
	"testing"

	"snake-canvas/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSnake() *Snake {
	return NewSnake([]types.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}}, types.Up)
}

func TestSnake_Move(t *testing.T) {
	s := newTestSnake()
	tail := s.Move(types.Point{X: 2, Y: 1})

	assert.Equal(t, types.Point{X: 4, Y: 2}, tail)
	assert.Equal(t, []types.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}}, s.Body)
	assert.Equal(t, types.Point{X: 2, Y: 1}, s.GetHead())

	s.Grow(tail)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, tail, s.Body[3])
}

func TestSnake_SetDirection(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 6}

	tests := []struct {
		name    string
		dir     types.Direction
		changed bool
	}{
		{"up", types.Up, true},
		{"down", types.Down, true},
		{"left", types.Left, true},
		{"back into neck", types.Right, false},
		{"invalid", types.Direction(7), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSnake()
			assert.Equal(t, tt.changed, s.SetDirection(tt.dir, grid))
			if tt.changed {
				assert.Equal(t, tt.dir, s.Direction)
			} else {
				assert.Equal(t, types.Up, s.Direction)
			}
		})
	}
}

func TestSnake_NextHeadWraps(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	s := NewSnake([]types.Point{{X: 0, Y: 0}}, types.Up)

	assert.Equal(t, types.Point{X: 0, Y: 2}, s.NextHead(types.Up, grid))
	assert.Equal(t, types.Point{X: 2, Y: 0}, s.NextHead(types.Left, grid))
}

func TestSnake_CellsIsACopy(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 6}
	s := newTestSnake()

	cells := s.Cells(grid)
	require.Equal(t, []int{14, 15, 16}, cells)

	cells[0] = 0
	assert.Equal(t, types.Point{X: 2, Y: 2}, s.GetHead())
}

func TestSnake_Fits(t *testing.T) {
	s := newTestSnake()
	assert.True(t, s.Fits(types.Grid{Width: 5, Height: 3}))
	assert.False(t, s.Fits(types.Grid{Width: 4, Height: 3}))
	assert.False(t, s.Fits(types.Grid{Width: 5, Height: 2}))
}
