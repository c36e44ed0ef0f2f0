//go:build js && wasm

package web

import (
	"syscall/js"

	"snake-canvas/ui"
)

// Export publishes the game's controls on the page as window.snake, so page
// widgets can drive the same fields the keyboard does.
func Export(g *Game) {
	api := map[string]any{
		"changeGameState": js.FuncOf(func(this js.Value, args []js.Value) any {
			g.Post(g.ctrl.ChangeGameState)
			return nil
		}),
		"setWidth":    setter(g, g.config.Width),
		"setHeight":   setter(g, g.config.Height),
		"setCellSize": setter(g, g.config.CellSize),
		"setFps":      setter(g, g.config.FPS),
		"state": js.FuncOf(func(this js.Value, args []js.Value) any {
			return g.ctrl.State().String()
		}),
	}
	js.Global().Set("snake", js.ValueOf(api))
}

func setter(g *Game, f *ui.Field[int]) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 || args[0].Type() != js.TypeNumber {
			return nil
		}
		v := args[0].Int()
		if v < 1 {
			v = 1
		}
		g.Post(func() { f.Set(v) })
		return nil
	})
}
