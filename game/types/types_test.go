package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_IndexRoundTrip(t *testing.T) {
	grids := []Grid{{1, 1}, {1, 7}, {7, 1}, {12, 12}, {5, 9}, {31, 3}}
	for _, g := range grids {
		for i := 0; i < g.Size(); i++ {
			p := g.Point(i)
			assert.Equal(t, i/g.Width, p.Y, "row of %d on %v", i, g)
			assert.Equal(t, i%g.Width, p.X, "column of %d on %v", i, g)
			assert.Equal(t, i, g.Index(p), "round trip of %d on %v", i, g)
			assert.True(t, g.Contains(p))
		}
	}
}

func TestGrid_Wrap(t *testing.T) {
	g := Grid{Width: 4, Height: 3}
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{2, 1}, Point{2, 1}},
		{"left edge", Point{-1, 0}, Point{3, 0}},
		{"right edge", Point{4, 2}, Point{0, 2}},
		{"top edge", Point{1, -1}, Point{1, 2}},
		{"bottom edge", Point{1, 3}, Point{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Wrap(tt.in))
		})
	}
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		assert.True(t, d.Valid())
		assert.Equal(t, d, d.Opposite().Opposite())
		v, o := d.ToPoint(), d.Opposite().ToPoint()
		assert.Equal(t, Point{}, Point{v.X + o.X, v.Y + o.Y})
	}
	assert.False(t, Direction(-1).Valid())
	assert.False(t, Direction(4).Valid())
	assert.Equal(t, Point{}, Direction(9).ToPoint())
	assert.Equal(t, "left", Left.String())
}

func TestGameState(t *testing.T) {
	assert.Equal(t, Stopped, GameState(0))
	assert.False(t, Stopped.IsTerminal())
	assert.False(t, Running.IsTerminal())
	assert.True(t, Won.IsTerminal())
	assert.True(t, Lost.IsTerminal())
	assert.Equal(t, "Lost", Lost.String())
}
