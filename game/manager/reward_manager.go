package manager

import (
	"snake-canvas/game/types"

	"golang.org/x/exp/rand"
)

// RewardManager owns the single reward cell of the world.
type RewardManager struct {
	rng          *rand.Rand
	collisionMgr *CollisionManager
	reward       types.Point
	present      bool
}

func NewRewardManager(collisionMgr *CollisionManager, seed uint64) *RewardManager {
	return &RewardManager{
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// Generate places the reward on a random free cell. It returns false and
// leaves no reward when the snake covers the whole board.
func (rm *RewardManager) Generate() bool {
	free := rm.collisionMgr.FreeCells()
	if len(free) == 0 {
		rm.present = false
		return false
	}
	idx := free[rm.rng.Intn(len(free))]
	rm.reward = rm.collisionMgr.Grid().Point(idx)
	rm.present = true
	return true
}

// RegenerateIfExists moves an existing reward to a fresh cell, used after the
// world was resized.
func (rm *RewardManager) RegenerateIfExists() {
	if rm.present {
		rm.Generate()
	}
}

func (rm *RewardManager) Clear() {
	rm.present = false
}

func (rm *RewardManager) Reward() (types.Point, bool) {
	return rm.reward, rm.present
}

func (rm *RewardManager) IsReward(pos types.Point) bool {
	return rm.present && rm.reward == pos
}

// Index returns the linear index of the reward, or -1 when there is none.
func (rm *RewardManager) Index() int {
	if !rm.present {
		return -1
	}
	return rm.collisionMgr.Grid().Index(rm.reward)
}
