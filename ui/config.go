package ui

import (
	"snake-canvas/config"
)

// Config is the live configuration surface of the game: four independently
// observable numbers.
type Config struct {
	Width    *Field[int]
	Height   *Field[int]
	CellSize *Field[int]
	FPS      *Field[int]
}

func NewConfig(s config.Settings) *Config {
	return &Config{
		Width:    NewField(s.Width),
		Height:   NewField(s.Height),
		CellSize: NewField(s.CellSize),
		FPS:      NewField(s.FPS),
	}
}

// CanvasSize is the pixel size the canvas must have for the current grid.
func (c *Config) CanvasSize() (width, height int) {
	return c.Width.Value() * c.CellSize.Value(), c.Height.Value() * c.CellSize.Value()
}

// adjust adds delta to f without letting it drop below 1.
func adjust(f *Field[int], delta int) {
	v := f.Value() + delta
	if v < 1 {
		v = 1
	}
	f.Set(v)
}
