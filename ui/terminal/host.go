// Package terminal hosts the game in a tcell screen. Every board cell is two
// columns wide so the board keeps roughly square cells.
package terminal

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-canvas/ui"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	cellColumns   = 2
	gridRune      = '·'
)

// Host drives a controller from a tcell event loop and replays its display
// list onto the screen.
type Host struct {
	screen  tcell.Screen
	list    *ui.DisplayList
	config  *ui.Config
	ctrl    *ui.Controller
	palette ui.Palette

	cells []tcell.Color
}

func NewHost(screen tcell.Screen, list *ui.DisplayList, config *ui.Config, ctrl *ui.Controller, palette ui.Palette) *Host {
	return &Host{screen: screen, list: list, config: config, ctrl: ctrl, palette: palette}
}

// Run processes input and paints frames until ctx is done or the player
// quits. The screen must already be initialized.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			h.ctrl.Frame(now)
			h.Draw()
		}
	}
}

// HandleEvent dispatches key presses to the controller's keyboard. It
// returns false when the player asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev.Key(), ev.Rune()) {
			return false
		}
		if code, ok := KeyCode(ev.Key(), ev.Rune()); ok {
			h.ctrl.Keyboard().Dispatch(code)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// IsQuit reports whether the key ends the session.
func IsQuit(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q')
}

// KeyCode translates a tcell key into the controller's key codes.
func KeyCode(key tcell.Key, r rune) (string, bool) {
	switch key {
	case tcell.KeyUp:
		return ui.KeyArrowUp, true
	case tcell.KeyDown:
		return ui.KeyArrowDown, true
	case tcell.KeyLeft:
		return ui.KeyArrowLeft, true
	case tcell.KeyRight:
		return ui.KeyArrowRight, true
	case tcell.KeyEnter:
		return ui.KeyEnter, true
	case tcell.KeyRune:
		code, ok := runeCodes[r]
		return code, ok
	}
	return "", false
}

var runeCodes = map[rune]string{
	' ':  ui.KeySpace,
	'[':  ui.KeyBracketLeft,
	']':  ui.KeyBracketRight,
	'-':  ui.KeyMinus,
	'=':  ui.KeyEqual,
	',':  ui.KeyComma,
	'.':  ui.KeyPeriod,
	';':  ui.KeySemicolon,
	'\'': ui.KeyQuote,
}

// Draw rasterizes the display list to board cells and shows them with a
// status line underneath.
func (h *Host) Draw() {
	width, height := h.config.Width.Value(), h.config.Height.Value()
	cellSize := h.config.CellSize.Value()
	background := toColor(h.palette.Background)

	if n := width * height; cap(h.cells) < n {
		h.cells = make([]tcell.Color, n)
	} else {
		h.cells = h.cells[:n]
	}
	for i := range h.cells {
		h.cells[i] = background
	}

	veiled := false
	for _, op := range h.list.Ops() {
		switch op.Kind {
		case ui.OpClear:
			h.fill(op.Rect, background, width, height, cellSize)
		case ui.OpFill:
			if op.Rect.Eq(h.list.Bounds()) && isTranslucent(op.Color) {
				veiled = true
				continue
			}
			h.fill(op.Rect, toColor(op.Color), width, height, cellSize)
		}
	}

	h.screen.Clear()
	gridStyle := tcell.StyleDefault.Foreground(toColor(h.palette.Grid))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := h.cells[y*width+x]
			style := gridStyle.Background(c).Dim(veiled)
			r := ' '
			if c == background {
				r = gridRune
			}
			h.screen.SetContent(x*cellColumns, y, r, nil, style)
			h.screen.SetContent(x*cellColumns+1, y, ' ', nil, style)
		}
	}
	h.drawStatus(height + 1)
	h.screen.Show()
}

// fill colors every board cell that r touches.
func (h *Host) fill(r image.Rectangle, c tcell.Color, width, height, cellSize int) {
	if cellSize < 1 {
		return
	}
	r = r.Intersect(image.Rect(0, 0, width*cellSize, height*cellSize))
	if r.Empty() {
		return
	}
	x0, y0 := r.Min.X/cellSize, r.Min.Y/cellSize
	x1, y1 := (r.Max.X+cellSize-1)/cellSize, (r.Max.Y+cellSize-1)/cellSize
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			h.cells[y*width+x] = c
		}
	}
}

func (h *Host) drawStatus(row int) {
	status := fmt.Sprintf("%s  length %d  best %d  %dx%d  %d fps  [q]uit",
		h.ctrl.State(), len(h.ctrl.Cells()), h.ctrl.Stats().Best(),
		h.config.Width.Value(), h.config.Height.Value(), h.config.FPS.Value())
	for i, r := range status {
		h.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
}

func isTranslucent(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a < 0xffff
}

func toColor(c color.Color) tcell.Color {
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
