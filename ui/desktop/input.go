package desktop

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-canvas/ui"
)

var keyCodes = []struct {
	key  int32
	code string
}{
	{rl.KeyUp, ui.KeyArrowUp},
	{rl.KeyDown, ui.KeyArrowDown},
	{rl.KeyLeft, ui.KeyArrowLeft},
	{rl.KeyRight, ui.KeyArrowRight},
	{rl.KeySpace, ui.KeySpace},
	{rl.KeyEnter, ui.KeyEnter},
	{rl.KeyLeftBracket, ui.KeyBracketLeft},
	{rl.KeyRightBracket, ui.KeyBracketRight},
	{rl.KeyMinus, ui.KeyMinus},
	{rl.KeyEqual, ui.KeyEqual},
	{rl.KeyComma, ui.KeyComma},
	{rl.KeyPeriod, ui.KeyPeriod},
	{rl.KeySemicolon, ui.KeySemicolon},
	{rl.KeyApostrophe, ui.KeyQuote},
}

// PollKeys dispatches every key pressed since the last frame.
func PollKeys(kb *ui.Keyboard) {
	for _, k := range keyCodes {
		if rl.IsKeyPressed(k.key) {
			kb.Dispatch(k.code)
		}
	}
}
