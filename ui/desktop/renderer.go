// Package desktop hosts the game in a raylib window.
package desktop

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-canvas/ui"
)

const (
	statusHeight   = 28
	statusFontSize = 18
	statusPadding  = 6
)

// Renderer replays the controller's display list into the window every frame
// and draws a status line under the board.
type Renderer struct {
	list    *ui.DisplayList
	config  *ui.Config
	ctrl    *ui.Controller
	palette ui.Palette

	screenWidth  int32
	screenHeight int32
}

func NewRenderer(list *ui.DisplayList, config *ui.Config, ctrl *ui.Controller, palette ui.Palette) *Renderer {
	r := &Renderer{list: list, config: config, ctrl: ctrl, palette: palette}
	r.UpdateDimensions()
	return r
}

// WindowSize is the window size that fits the canvas plus the status line.
func (r *Renderer) WindowSize() (int32, int32) {
	b := r.list.Bounds()
	return int32(b.Dx()), int32(b.Dy()) + statusHeight
}

// UpdateDimensions resizes the window when the canvas size changed.
func (r *Renderer) UpdateDimensions() {
	w, h := r.WindowSize()
	if w == r.screenWidth && h == r.screenHeight {
		return
	}
	r.screenWidth, r.screenHeight = w, h
	if rl.IsWindowReady() {
		rl.SetWindowSize(int(w), int(h))
	}
}

func (r *Renderer) Draw() {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(toColor(r.palette.Background))

	for _, op := range r.list.Ops() {
		switch op.Kind {
		case ui.OpClear:
			rl.DrawRectangle(int32(op.Rect.Min.X), int32(op.Rect.Min.Y),
				int32(op.Rect.Dx()), int32(op.Rect.Dy()), toColor(r.palette.Background))
		case ui.OpFill:
			rl.DrawRectangle(int32(op.Rect.Min.X), int32(op.Rect.Min.Y),
				int32(op.Rect.Dx()), int32(op.Rect.Dy()), toColor(op.Color))
		case ui.OpStroke:
			c := toColor(op.Color)
			for _, l := range op.Lines {
				rl.DrawLine(int32(l.From.X), int32(l.From.Y), int32(l.To.X), int32(l.To.Y), c)
			}
		}
	}

	r.drawStatus()
	rl.EndDrawing()
}

func (r *Renderer) drawStatus() {
	y := r.screenHeight - statusHeight
	rl.DrawRectangle(0, y, r.screenWidth, statusHeight, rl.Black)
	status := fmt.Sprintf("%s  length %d  best %d  %dx%d  %d fps",
		r.ctrl.State(), len(r.ctrl.Cells()), r.ctrl.Stats().Best(),
		r.config.Width.Value(), r.config.Height.Value(), r.config.FPS.Value())
	rl.DrawText(status, statusPadding, y+statusPadding, statusFontSize, rl.RayWhite)
}

func toColor(c color.Color) rl.Color {
	if c == nil {
		return rl.Blank
	}
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}
