package ui

import (
	"testing"

	"snake-canvas/game/types"

	"github.com/stretchr/testify/assert"
)

func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		code string
		want types.Direction
		ok   bool
	}{
		{"ArrowUp", types.Up, true},
		{"ArrowDown", types.Down, true},
		{"ArrowLeft", types.Left, true},
		{"ArrowRight", types.Right, true},
		{"KeyW", 0, false},
		{"Space", 0, false},
		{"", 0, false},
	}
	seen := map[types.Direction]bool{}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := DirectionForKey(tt.code)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.False(t, seen[got], "each arrow maps to a distinct direction")
				seen[got] = true
			}
		})
	}
	assert.Len(t, seen, 4)
}

func TestKeyboard_Listeners(t *testing.T) {
	kb := NewKeyboard()
	var a, b []string

	removeA := kb.AddListener(func(code string) { a = append(a, code) })
	kb.AddListener(func(code string) { b = append(b, code) })
	assert.Equal(t, 2, kb.Listeners())

	kb.Dispatch("ArrowUp")
	removeA()
	kb.Dispatch("ArrowDown")

	assert.Equal(t, []string{"ArrowUp"}, a)
	assert.Equal(t, []string{"ArrowUp", "ArrowDown"}, b)
	assert.Equal(t, 1, kb.Listeners())
}

func TestKeyboard_ListenerRemovingItself(t *testing.T) {
	kb := NewKeyboard()
	calls := 0
	var remove func()
	remove = kb.AddListener(func(string) {
		calls++
		remove()
	})
	kb.AddListener(func(string) { calls++ })

	kb.Dispatch("Space")
	kb.Dispatch("Space")

	assert.Equal(t, 3, calls)
}
