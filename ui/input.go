package ui

import (
	"snake-canvas/game/types"
)

// Key codes follow the browser's KeyboardEvent.code names. Hosts translate
// their native events into these.
const (
	KeyArrowUp      = "ArrowUp"
	KeyArrowDown    = "ArrowDown"
	KeyArrowLeft    = "ArrowLeft"
	KeyArrowRight   = "ArrowRight"
	KeySpace        = "Space"
	KeyEnter        = "Enter"
	KeyBracketLeft  = "BracketLeft"
	KeyBracketRight = "BracketRight"
	KeyMinus        = "Minus"
	KeyEqual        = "Equal"
	KeyComma        = "Comma"
	KeyPeriod       = "Period"
	KeySemicolon    = "Semicolon"
	KeyQuote        = "Quote"
)

// DirectionForKey maps the four arrow keys onto directions. Any other key
// reports false.
func DirectionForKey(code string) (types.Direction, bool) {
	switch code {
	case KeyArrowLeft:
		return types.Left, true
	case KeyArrowUp:
		return types.Up, true
	case KeyArrowRight:
		return types.Right, true
	case KeyArrowDown:
		return types.Down, true
	}
	return 0, false
}

// Keyboard fans key-down events out to its listeners. It stands in for the
// document-level event target of a browser page.
type Keyboard struct {
	listeners []keyListener
	nextID    int
}

type keyListener struct {
	id int
	fn func(code string)
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// AddListener registers fn and returns a func that detaches it.
func (k *Keyboard) AddListener(fn func(code string)) (remove func()) {
	id := k.nextID
	k.nextID++
	k.listeners = append(k.listeners, keyListener{id: id, fn: fn})
	return func() {
		for i, l := range k.listeners {
			if l.id == id {
				k.listeners = append(k.listeners[:i], k.listeners[i+1:]...)
				return
			}
		}
	}
}

func (k *Keyboard) Dispatch(code string) {
	listeners := make([]keyListener, len(k.listeners))
	copy(listeners, k.listeners)
	for _, l := range listeners {
		l.fn(code)
	}
}

func (k *Keyboard) Listeners() int {
	return len(k.listeners)
}
