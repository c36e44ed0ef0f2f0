package ui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"snake-canvas/game/types"
)

const (
	veilOpacity  = 0.55
	veilDuration = 300 * time.Millisecond
)

// Overlay fades a veil over the board while the game is not running.
type Overlay struct {
	tween   *gween.Tween
	opacity float32
	target  float32
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update moves the veil towards the opacity that matches state and returns
// the current opacity.
func (o *Overlay) Update(state types.GameState, dt time.Duration) float32 {
	var target float32
	if state != types.Running {
		target = veilOpacity
	}
	if target != o.target {
		o.target = target
		o.tween = gween.New(o.opacity, target, float32(veilDuration.Seconds()), ease.OutQuad)
	}
	if o.tween != nil {
		current, finished := o.tween.Update(float32(dt.Seconds()))
		o.opacity = current
		if finished {
			o.opacity = o.target
			o.tween = nil
		}
	}
	return o.opacity
}

func (o *Overlay) Opacity() float32 {
	return o.opacity
}
