package manager

import (
	"testing"

	"snake-canvas/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionManager_OccupyRelease(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 3, Height: 2})
	p := types.Point{X: 1, Y: 1}

	assert.False(t, cm.Occupy(p))
	assert.True(t, cm.IsOccupied(p))
	assert.True(t, cm.Occupy(p), "second occupation is a collision")

	cm.Release(p)
	assert.False(t, cm.IsOccupied(p))
	assert.Len(t, cm.FreeCells(), 6)
}

func TestCollisionManager_Reset(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 3, Height: 3})
	cm.Occupy(types.Point{X: 2, Y: 2})

	grid := types.Grid{Width: 4, Height: 2}
	cm.Reset(grid, []types.Point{{X: 0, Y: 0}, {X: 3, Y: 1}})

	assert.Equal(t, grid, cm.Grid())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, cm.FreeCells())
}

func TestCollisionManager_ValidateResize(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 6, Height: 6})
	body := []types.Point{{X: 4, Y: 1}, {X: 4, Y: 2}}

	tests := []struct {
		name string
		grid types.Grid
		want bool
	}{
		{"grow", types.Grid{Width: 8, Height: 8}, true},
		{"shrink around body", types.Grid{Width: 5, Height: 3}, true},
		{"cut column", types.Grid{Width: 4, Height: 6}, false},
		{"cut row", types.Grid{Width: 6, Height: 2}, false},
		{"zero width", types.Grid{Width: 0, Height: 6}, false},
		{"negative height", types.Grid{Width: 6, Height: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cm.ValidateResize(tt.grid, body))
		})
	}
}

func TestRewardManager_Generate(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	cm := NewCollisionManager(grid)
	cm.Reset(grid, []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	rm := NewRewardManager(cm, 7)

	assert.Equal(t, -1, rm.Index())

	require.True(t, rm.Generate())
	pos, ok := rm.Reward()
	assert.True(t, ok)
	assert.Equal(t, types.Point{X: 1, Y: 1}, pos, "only free cell")
	assert.Equal(t, 3, rm.Index())
	assert.True(t, rm.IsReward(pos))

	cm.Occupy(pos)
	assert.False(t, rm.Generate(), "full board")
	assert.Equal(t, -1, rm.Index())
}

func TestRewardManager_NeverOnSnake(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	cm := NewCollisionManager(grid)
	body := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	cm.Reset(grid, body)
	rm := NewRewardManager(cm, 42)

	for i := 0; i < 200; i++ {
		require.True(t, rm.Generate())
		pos, _ := rm.Reward()
		assert.False(t, cm.IsOccupied(pos))
	}
}

func TestRewardManager_RegenerateIfExists(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 4, Height: 4})
	rm := NewRewardManager(cm, 1)

	rm.RegenerateIfExists()
	assert.Equal(t, -1, rm.Index(), "nothing to regenerate")

	rm.Generate()
	rm.RegenerateIfExists()
	assert.NotEqual(t, -1, rm.Index())

	rm.Clear()
	assert.Equal(t, -1, rm.Index())
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	assert.Equal(t, types.Stopped, sm.State())
	assert.False(t, sm.IsRunning())

	sm.Set(types.Running)
	assert.True(t, sm.IsRunning())

	sm.Set(types.Lost)
	assert.Equal(t, types.Lost, sm.State())
}
