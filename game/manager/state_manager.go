package manager

import (
	"snake-canvas/game/types"
	"snake-canvas/log"
)

type StateManager struct {
	state types.GameState
}

func NewStateManager() *StateManager {
	return &StateManager{state: types.Stopped}
}

func (sm *StateManager) State() types.GameState {
	return sm.state
}

func (sm *StateManager) Set(state types.GameState) {
	if state == sm.state {
		return
	}
	log.Debug("game state %s -> %s", sm.state, state)
	sm.state = state
}

func (sm *StateManager) IsRunning() bool {
	return sm.state == types.Running
}
