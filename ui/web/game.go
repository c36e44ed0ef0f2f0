// Package web hosts the game with ebiten, which runs natively and in the
// browser as WebAssembly.
package web

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snake-canvas/log"
	"snake-canvas/ui"
)

const statusHeight = 20

var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, ui.KeyArrowUp},
	{ebiten.KeyArrowDown, ui.KeyArrowDown},
	{ebiten.KeyArrowLeft, ui.KeyArrowLeft},
	{ebiten.KeyArrowRight, ui.KeyArrowRight},
	{ebiten.KeySpace, ui.KeySpace},
	{ebiten.KeyEnter, ui.KeyEnter},
	{ebiten.KeyBracketLeft, ui.KeyBracketLeft},
	{ebiten.KeyBracketRight, ui.KeyBracketRight},
	{ebiten.KeyMinus, ui.KeyMinus},
	{ebiten.KeyEqual, ui.KeyEqual},
	{ebiten.KeyComma, ui.KeyComma},
	{ebiten.KeyPeriod, ui.KeyPeriod},
	{ebiten.KeySemicolon, ui.KeySemicolon},
	{ebiten.KeyQuote, ui.KeyQuote},
}

// Game implements ebiten.Game on top of a controller.
type Game struct {
	list    *ui.DisplayList
	config  *ui.Config
	ctrl    *ui.Controller
	palette ui.Palette

	// Actions posted from outside the game loop, run at the start of Update.
	pending chan func()
	width   int
	height  int
}

func NewGame(list *ui.DisplayList, config *ui.Config, ctrl *ui.Controller, palette ui.Palette) *Game {
	return &Game{
		list:    list,
		config:  config,
		ctrl:    ctrl,
		palette: palette,
		pending: make(chan func(), 32),
	}
}

// Post schedules fn to run on the game loop. It never blocks and reports
// false when the queue is full.
func (g *Game) Post(fn func()) bool {
	select {
	case g.pending <- fn:
		return true
	default:
		log.Warn("Dropped posted action, queue full")
		return false
	}
}

func (g *Game) Update() error {
	for drained := false; !drained; {
		select {
		case fn := <-g.pending:
			fn()
		default:
			drained = true
		}
	}

	for _, k := range keyCodes {
		if inpututil.IsKeyJustPressed(k.key) {
			g.ctrl.Keyboard().Dispatch(k.code)
		}
	}
	g.ctrl.Frame(time.Now())

	w, h := g.ScreenSize()
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		ebiten.SetWindowSize(w, h)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	for _, op := range g.list.Ops() {
		switch op.Kind {
		case ui.OpClear:
			vector.DrawFilledRect(screen, float32(op.Rect.Min.X), float32(op.Rect.Min.Y),
				float32(op.Rect.Dx()), float32(op.Rect.Dy()), g.palette.Background, false)
		case ui.OpFill:
			vector.DrawFilledRect(screen, float32(op.Rect.Min.X), float32(op.Rect.Min.Y),
				float32(op.Rect.Dx()), float32(op.Rect.Dy()), op.Color, false)
		case ui.OpStroke:
			for _, l := range op.Lines {
				vector.StrokeLine(screen, float32(l.From.X), float32(l.From.Y),
					float32(l.To.X), float32(l.To.Y), 1, op.Color, false)
			}
		}
	}

	status := fmt.Sprintf("%s  length %d  best %d  %d fps",
		g.ctrl.State(), len(g.ctrl.Cells()), g.ctrl.Stats().Best(), g.config.FPS.Value())
	ebitenutil.DebugPrintAt(screen, status, 4, g.list.Bounds().Dy()+2)
}

// ScreenSize is the canvas plus the status line.
func (g *Game) ScreenSize() (int, int) {
	b := g.list.Bounds()
	return b.Dx(), b.Dy() + statusHeight
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.ScreenSize()
}
