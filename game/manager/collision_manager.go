package manager

import (
	"snake-canvas/game/types"
)

// CollisionManager tracks which cells of the grid are occupied by the snake.
type CollisionManager struct {
	grid  types.Grid
	board []bool
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid:  grid,
		board: make([]bool, grid.Size()),
	}
}

// Occupy marks pos as taken. It returns true when the cell was already taken,
// which means the snake ran into itself.
func (cm *CollisionManager) Occupy(pos types.Point) bool {
	idx := cm.grid.Index(pos)
	if cm.board[idx] {
		return true
	}
	cm.board[idx] = true
	return false
}

func (cm *CollisionManager) Release(pos types.Point) {
	cm.board[cm.grid.Index(pos)] = false
}

func (cm *CollisionManager) IsOccupied(pos types.Point) bool {
	return cm.board[cm.grid.Index(pos)]
}

// Reset discards the board and rebuilds it for grid from the given body.
func (cm *CollisionManager) Reset(grid types.Grid, body []types.Point) {
	cm.grid = grid
	cm.board = make([]bool, grid.Size())
	for _, p := range body {
		cm.board[grid.Index(p)] = true
	}
}

// FreeCells lists the linear indices of every unoccupied cell.
func (cm *CollisionManager) FreeCells() []int {
	free := make([]int, 0, len(cm.board))
	for i, taken := range cm.board {
		if !taken {
			free = append(free, i)
		}
	}
	return free
}

// ValidateResize checks that no body segment would fall outside grid.
func (cm *CollisionManager) ValidateResize(grid types.Grid, body []types.Point) bool {
	if grid.Width <= 0 || grid.Height <= 0 {
		return false
	}
	for _, p := range body {
		if !grid.Contains(p) {
			return false
		}
	}
	return true
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}
