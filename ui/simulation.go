package ui

import (
	"fmt"

	"snake-canvas/game"
)

var _ Simulation = (*game.Snake)(nil)

// NewGameSimulation is the SimulationFactory backed by the game package.
func NewGameSimulation(width, height, spawnIndex, initialLength int) (Simulation, error) {
	world, err := game.NewWorld(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}
	snake, err := game.NewSnake(spawnIndex, initialLength, world)
	if err != nil {
		return nil, fmt.Errorf("failed to create snake: %w", err)
	}
	return snake, nil
}
