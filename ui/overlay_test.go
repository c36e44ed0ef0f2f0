package ui

import (
	"testing"
	"time"

	"snake-canvas/game/types"

	"github.com/stretchr/testify/assert"
)

func TestOverlay_FadesInAndOut(t *testing.T) {
	o := NewOverlay()
	assert.Zero(t, o.Opacity())

	mid := o.Update(types.Stopped, veilDuration/2)
	assert.Greater(t, mid, float32(0))
	assert.Less(t, mid, float32(veilOpacity))

	full := o.Update(types.Stopped, veilDuration)
	assert.InDelta(t, veilOpacity, full, 1e-6)

	assert.InDelta(t, veilOpacity, o.Update(types.Lost, time.Second), 1e-6, "all non-running states share the veil")

	o.Update(types.Running, veilDuration/2)
	assert.Less(t, o.Opacity(), float32(veilOpacity))
	assert.Zero(t, o.Update(types.Running, veilDuration))
}
