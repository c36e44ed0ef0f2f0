package game

import (
	"fmt"
	"time"

	"snake-canvas/game/manager"
	"snake-canvas/game/types"
)

// World is the grid the snake lives on, together with its board occupancy
// and the reward cell.
type World struct {
	grid       types.Grid
	collisions *manager.CollisionManager
	rewards    *manager.RewardManager
}

// NewWorld creates a world seeded from the wall clock.
func NewWorld(width, height int) (*World, error) {
	return NewSeededWorld(width, height, uint64(time.Now().UnixNano()))
}

// NewSeededWorld creates a world whose reward placement is reproducible.
func NewSeededWorld(width, height int, seed uint64) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid world size %dx%d", width, height)
	}
	grid := types.Grid{Width: width, Height: height}
	collisions := manager.NewCollisionManager(grid)
	return &World{
		grid:       grid,
		collisions: collisions,
		rewards:    manager.NewRewardManager(collisions, seed),
	}, nil
}

func (w *World) Width() int {
	return w.grid.Width
}

func (w *World) Height() int {
	return w.grid.Height
}

func (w *World) Grid() types.Grid {
	return w.grid
}

// resize switches to grid, rebuilding occupancy from body and moving an
// existing reward so that it stays on the board.
func (w *World) resize(grid types.Grid, body []types.Point) {
	w.grid = grid
	w.collisions.Reset(grid, body)
	w.rewards.RegenerateIfExists()
}

// reset clears the board and the reward and occupies body.
func (w *World) reset(body []types.Point) {
	w.collisions.Reset(w.grid, body)
	w.rewards.Clear()
}
