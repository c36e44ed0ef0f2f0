package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"snake-canvas/log"
)

const (
	DefaultWidth         = 12
	DefaultHeight        = 12
	DefaultCellSize      = 40
	DefaultFPS           = 9
	DefaultInitialLength = 4
)

// Settings are the startup values of the game.
type Settings struct {
	Width         int
	Height        int
	CellSize      int
	FPS           int
	InitialLength int
	LogLevel      string
	Sound         bool
}

func Default() Settings {
	return Settings{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		CellSize:      DefaultCellSize,
		FPS:           DefaultFPS,
		InitialLength: DefaultInitialLength,
		LogLevel:      "info",
		Sound:         true,
	}
}

// Bind registers the settings as flags on fs, using the current values as
// defaults.
func (s *Settings) Bind(fs *flag.FlagSet) {
	fs.IntVar(&s.Width, "width", s.Width, "Grid width in cells")
	fs.IntVar(&s.Height, "height", s.Height, "Grid height in cells")
	fs.IntVar(&s.CellSize, "cell-size", s.CellSize, "Cell size in pixels")
	fs.IntVar(&s.FPS, "fps", s.FPS, "Game steps per second")
	fs.IntVar(&s.InitialLength, "length", s.InitialLength, "Initial snake length")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Log level (error, warn, info, debug, trace)")
	fs.BoolVar(&s.Sound, "sound", s.Sound, "Play sound effects")
}

func (s Settings) Validate() error {
	var errs []error
	if s.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", s.Width))
	}
	if s.Height <= 0 {
		errs = append(errs, fmt.Errorf("height must be positive, got %d", s.Height))
	}
	if s.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", s.CellSize))
	}
	if s.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", s.FPS))
	}
	if s.InitialLength < 1 || s.InitialLength >= s.Width {
		errs = append(errs, fmt.Errorf("length must be in [1, width), got %d", s.InitialLength))
	}
	if _, err := log.ParseLogLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SpawnIndex derives the snake's spawn cell from the clock, so each launch
// starts somewhere else on the board.
func (s Settings) SpawnIndex(now time.Time) int {
	return int(now.UnixMilli() % int64(s.Width*s.Height))
}

// Parse binds the settings to a new flag set, parses args and validates the
// result.
func Parse(name string, args []string) (Settings, error) {
	s := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	s.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
