package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"snake-canvas/game"
	"snake-canvas/game/types"
	"snake-canvas/log"
)

// MaxResizeAttempts bounds how often a rejected width or height is bumped
// by one and re-applied before the field falls back to the world's size.
const MaxResizeAttempts = 16

// Simulation is everything the controller needs from the game engine.
type Simulation interface {
	ChangeDirection(direction types.Direction)
	SetWorldWidth(width int) bool
	SetWorldHeight(height int) bool
	WorldWidth() int
	WorldHeight() int
	UpdatePosition()
	Cells() []int
	Length() int
	RewardCellIdx() int
	State() types.GameState
	SetState(state types.GameState)
	Restart()
}

// SimulationFactory builds the world and the snake in one go.
type SimulationFactory func(width, height, spawnIndex, initialLength int) (Simulation, error)

// Sounds are the effects played on game events. A nil Sounds is silent.
type Sounds interface {
	PlayReward()
	PlayLost()
	PlayWon()
}

type ControllerOptions struct {
	Config        *Config
	Canvas        Canvas
	Keyboard      *Keyboard
	NewSimulation SimulationFactory
	SpawnIndex    int
	InitialLength int
	Palette       Palette
	Sounds        Sounds
}

// Controller glues the configuration surface, the keyboard and the canvas to
// a simulation and drives the render loop.
type Controller struct {
	id       string
	logger   *log.Logger
	config   *Config
	canvas   Canvas
	keyboard *Keyboard
	painter  *Painter
	overlay  *Overlay
	sounds   Sounds

	sim   Simulation
	cells []int
	stats *game.Stats

	// Time of the first running tick of the current game.
	gameStart time.Time

	running  bool
	lastTick time.Time
	detach   []func()

	resizeAttempts int
	ticks          uint64
}

func NewController(opts ControllerOptions) (*Controller, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Canvas == nil {
		return nil, errors.New("canvas is required")
	}
	if opts.NewSimulation == nil {
		return nil, errors.New("simulation factory is required")
	}
	keyboard := opts.Keyboard
	if keyboard == nil {
		keyboard = NewKeyboard()
	}
	palette := opts.Palette
	if palette == (Palette{}) {
		palette = DefaultPalette()
	}

	cfg := opts.Config
	sim, err := opts.NewSimulation(cfg.Width.Value(), cfg.Height.Value(), opts.SpawnIndex, opts.InitialLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	id := uuid.New().String()
	c := &Controller{
		id:       id,
		logger:   log.Default().With("session", id),
		config:   cfg,
		canvas:   opts.Canvas,
		keyboard: keyboard,
		painter:  NewPainter(opts.Canvas, palette),
		overlay:  NewOverlay(),
		sounds:   opts.Sounds,
		sim:      sim,
		stats:    game.NewStats(),
	}
	c.resizeCanvas()
	c.cells = sim.Cells()
	return c, nil
}

func (c *Controller) ID() string {
	return c.id
}

func (c *Controller) Keyboard() *Keyboard {
	return c.keyboard
}

// Start attaches the key listener and the configuration observers and arms
// the render loop. The first tick is due one interval after now.
func (c *Controller) Start(now time.Time) {
	if c.running {
		return
	}
	c.detach = append(c.detach,
		c.keyboard.AddListener(c.onKeyDown),
		c.config.Width.Subscribe(c.onWidthChange),
		c.config.Height.Subscribe(c.onHeightChange),
		c.config.CellSize.Subscribe(func(int) { c.resizeCanvas() }),
	)
	c.running = true
	c.lastTick = now
	c.paint()
	c.logger.Info("Controller started: %dx%d cells, %dpx, %d fps",
		c.config.Width.Value(), c.config.Height.Value(), c.config.CellSize.Value(), c.config.FPS.Value())
}

// Stop detaches everything Start attached and halts the render loop.
func (c *Controller) Stop() {
	if !c.running {
		return
	}
	for _, fn := range c.detach {
		fn()
	}
	c.detach = nil
	c.running = false
	c.logger.Info("Controller stopped after %d ticks", c.ticks)
	if summary, err := json.Marshal(c.stats.Summary()); err == nil {
		c.logger.Info("Session summary: %s", summary)
	}
}

func (c *Controller) Running() bool {
	return c.running
}

// Interval is the time between two ticks at the configured frame rate.
func (c *Controller) Interval() time.Duration {
	fps := c.config.FPS.Value()
	if fps < 1 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}

// Frame is called by the host once per display frame. It runs a tick when
// the configured interval has elapsed and reports whether it did.
func (c *Controller) Frame(now time.Time) bool {
	if !c.running {
		return false
	}
	if now.Sub(c.lastTick) < c.Interval() {
		return false
	}
	c.lastTick = now
	c.Tick()
	return true
}

// Tick clears the canvas, advances the simulation by one step, refreshes the
// snapshot of the snake's cells and repaints.
func (c *Controller) Tick() {
	prevState := c.sim.State()
	prevLength := len(c.cells)
	if prevState == types.Running && c.gameStart.IsZero() {
		c.gameStart = c.lastTick
	}

	c.canvas.ClearRect(c.canvas.Bounds())
	c.sim.UpdatePosition()
	c.cells = c.sim.Cells()
	c.ticks++

	state := c.sim.State()
	if len(c.cells) > prevLength {
		c.logger.Debug("Reward eaten, length %d", len(c.cells))
		c.play(Sounds.PlayReward)
	}
	if state != prevState {
		switch state {
		case types.Lost:
			c.logger.Info("Game lost at length %d", len(c.cells))
			c.recordGame(false)
			c.play(Sounds.PlayLost)
		case types.Won:
			c.logger.Info("Game won at length %d", len(c.cells))
			c.recordGame(true)
			c.play(Sounds.PlayWon)
		}
	}

	c.overlay.Update(state, c.Interval())
	c.paint()
}

func (c *Controller) recordGame(won bool) {
	c.stats.AddGame(game.GameRecord{
		StartTime: c.gameStart,
		EndTime:   c.lastTick,
		Length:    len(c.cells),
		Won:       won,
	})
	c.gameStart = time.Time{}
}

func (c *Controller) play(effect func(Sounds)) {
	if c.sounds != nil {
		effect(c.sounds)
	}
}

func (c *Controller) paint() {
	width := c.config.Width.Value()
	height := c.config.Height.Value()
	cellSize := c.config.CellSize.Value()

	c.painter.DrawWorld(width, height, cellSize)
	c.painter.DrawSnake(c.cells, width, cellSize)
	c.painter.DrawRewardCell(c.sim.RewardCellIdx(), width, cellSize)
	c.painter.DrawVeil(c.overlay.Opacity())
}

// ChangeGameState restarts a finished game and otherwise toggles between
// Running and Stopped.
func (c *Controller) ChangeGameState() {
	state := c.sim.State()
	if state.IsTerminal() {
		c.sim.Restart()
		c.cells = c.sim.Cells()
		c.logger.Info("Game restarted")
		return
	}
	if state == types.Running {
		c.sim.SetState(types.Stopped)
	} else {
		c.sim.SetState(types.Running)
	}
	c.logger.Debug("Game state %s -> %s", state, c.sim.State())
}

func (c *Controller) State() types.GameState {
	return c.sim.State()
}

// Stats holds the games finished under this controller.
func (c *Controller) Stats() *game.Stats {
	return c.stats
}

// Cells returns the snake cells as of the last tick.
func (c *Controller) Cells() []int {
	return c.cells
}

func (c *Controller) onKeyDown(code string) {
	if dir, ok := DirectionForKey(code); ok {
		c.sim.ChangeDirection(dir)
		return
	}
	switch code {
	case KeySpace, KeyEnter:
		c.ChangeGameState()
	case KeyBracketLeft:
		adjust(c.config.Width, -1)
	case KeyBracketRight:
		adjust(c.config.Width, 1)
	case KeyMinus:
		adjust(c.config.Height, -1)
	case KeyEqual:
		adjust(c.config.Height, 1)
	case KeyComma:
		adjust(c.config.CellSize, -1)
	case KeyPeriod:
		adjust(c.config.CellSize, 1)
	case KeySemicolon:
		adjust(c.config.FPS, -1)
	case KeyQuote:
		adjust(c.config.FPS, 1)
	}
}

func (c *Controller) onWidthChange(width int) {
	c.applyDimension(c.config.Width, width, c.sim.SetWorldWidth, c.sim.WorldWidth)
}

func (c *Controller) onHeightChange(height int) {
	c.applyDimension(c.config.Height, height, c.sim.SetWorldHeight, c.sim.WorldHeight)
}

// applyDimension pushes value into the simulation. A rejected value is bumped
// by one and written back to the field, which re-enters this method through
// the field's observer.
func (c *Controller) applyDimension(field *Field[int], value int, apply func(int) bool, current func() int) {
	if !apply(value) {
		if c.resizeAttempts < MaxResizeAttempts {
			c.resizeAttempts++
			field.Set(value + 1)
			c.resizeAttempts--
		} else {
			c.logger.Warn("World rejected %d cells %d times, keeping %d", value-MaxResizeAttempts, MaxResizeAttempts, current())
			c.resizeAttempts = 0
			field.Set(current())
			c.resizeAttempts = MaxResizeAttempts
		}
	}
	c.resizeCanvas()
}

func (c *Controller) resizeCanvas() {
	width, height := c.config.CanvasSize()
	c.canvas.Resize(width, height)
}
