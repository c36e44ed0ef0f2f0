package game

import (
	"errors"
	"fmt"
	"sync"

	"snake-canvas/game/entity"
	"snake-canvas/game/manager"
	"snake-canvas/game/types"
)

var ErrNilWorld = errors.New("world is nil")

// Snake is the simulation handle: it owns the world and the snake body and
// advances the game one step at a time.
type Snake struct {
	Mutex         sync.RWMutex
	world         *World
	body          *entity.Snake
	state         *manager.StateManager
	spawnIndex    int
	initialLength int
}

// NewSnake lays out a snake of initialLength cells starting at spawnIndex and
// continuing along increasing linear indices. The game starts Stopped.
func NewSnake(spawnIndex, initialLength int, world *World) (*Snake, error) {
	if world == nil {
		return nil, ErrNilWorld
	}
	if initialLength < 1 || initialLength >= world.Width() {
		return nil, fmt.Errorf("initial length %d must be in [1, %d)", initialLength, world.Width())
	}
	if spawnIndex < 0 {
		return nil, fmt.Errorf("negative spawn index %d", spawnIndex)
	}

	s := &Snake{
		world:         world,
		state:         manager.NewStateManager(),
		spawnIndex:    spawnIndex,
		initialLength: initialLength,
	}
	s.body = entity.NewSnake(s.spawnBody(), types.Up)
	world.reset(s.body.Body)
	return s, nil
}

func (s *Snake) spawnBody() []types.Point {
	grid := s.world.Grid()
	size := grid.Size()
	length := s.initialLength
	if length > size {
		length = size
	}
	body := make([]types.Point, length)
	for i := range body {
		body[i] = grid.Point((s.spawnIndex + i) % size)
	}
	return body
}

// ChangeDirection sets the heading for the next step. Unknown directions and
// reversals into the neck are ignored.
func (s *Snake) ChangeDirection(direction types.Direction) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	s.body.SetDirection(direction, s.world.Grid())
}

// SetWorldWidth resizes the world horizontally. It reports false, leaving the
// world unchanged, when a body segment would end up outside it.
func (s *Snake) SetWorldWidth(width int) bool {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	return s.resize(types.Grid{Width: width, Height: s.world.Height()})
}

// SetWorldHeight is the vertical counterpart of SetWorldWidth.
func (s *Snake) SetWorldHeight(height int) bool {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	return s.resize(types.Grid{Width: s.world.Width(), Height: height})
}

func (s *Snake) resize(grid types.Grid) bool {
	if !s.world.collisions.ValidateResize(grid, s.body.Body) {
		return false
	}
	s.world.resize(grid, s.body.Body)
	return true
}

// UpdatePosition advances the game by one step. It does nothing unless the
// game is Running.
func (s *Snake) UpdatePosition() {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	if !s.state.IsRunning() {
		return
	}

	grid := s.world.Grid()
	collisions := s.world.collisions
	rewards := s.world.rewards

	next := s.body.NextHead(s.body.Direction, grid)
	_, hasReward := rewards.Reward()
	grow := rewards.IsReward(next)

	tail := s.body.Move(next)
	collisions.Release(tail)
	if collisions.Occupy(next) {
		s.state.Set(types.Lost)
		return
	}

	if grow {
		s.body.Grow(tail)
		collisions.Occupy(tail)
	}

	if !hasReward || grow {
		if !rewards.Generate() {
			s.state.Set(types.Won)
		}
	}
}

// Cells returns a snapshot of the body as linear indices, head first.
func (s *Snake) Cells() []int {
	s.Mutex.RLock()
	defer s.Mutex.RUnlock()

	return s.body.Cells(s.world.Grid())
}

func (s *Snake) Length() int {
	s.Mutex.RLock()
	defer s.Mutex.RUnlock()

	return s.body.Len()
}

func (s *Snake) Direction() types.Direction {
	s.Mutex.RLock()
	defer s.Mutex.RUnlock()

	return s.body.Direction
}

// RewardCellIdx returns the linear index of the reward cell, or -1.
func (s *Snake) RewardCellIdx() int {
	s.Mutex.RLock()
	defer s.Mutex.RUnlock()

	return s.world.rewards.Index()
}

func (s *Snake) State() types.GameState {
	s.Mutex.RLock()
	defer s.Mutex.RUnlock()

	return s.state.State()
}

func (s *Snake) SetState(state types.GameState) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	s.state.Set(state)
}

// Restart lays out a fresh snake at the original spawn index on a cleared
// board and resumes the game.
func (s *Snake) Restart() {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()

	s.body = entity.NewSnake(s.spawnBody(), types.Up)
	s.world.reset(s.body.Body)
	s.state.Set(types.Running)
}

func (s *Snake) WorldWidth() int {
	s.Mutex.RLock()
	defer s.Mutex.RUnlock()

	return s.world.Width()
}

func (s *Snake) WorldHeight() int {
	s.Mutex.RLock()
	defer s.Mutex.RUnlock()

	return s.world.Height()
}
