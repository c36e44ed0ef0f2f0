package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-canvas/config"
	"snake-canvas/ui"
)

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen, *ui.Controller) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := ui.NewConfig(config.Default())
	list := ui.NewDisplayList(cfg.CanvasSize())
	ctrl, err := ui.NewController(ui.ControllerOptions{
		Config:        cfg,
		Canvas:        list,
		NewSimulation: ui.NewGameSimulation,
		SpawnIndex:    20,
		InitialLength: 4,
	})
	require.NoError(t, err)
	return NewHost(screen, list, cfg, ctrl, ui.DefaultPalette()), screen, ctrl
}

func background(screen tcell.SimulationScreen, x, y int) (tcell.Color, tcell.AttrMask) {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, attrs := style.Decompose()
	return bg, attrs
}

func TestHost_DrawsBoard(t *testing.T) {
	host, screen, ctrl := newTestHost(t)
	ctrl.Start(time.Now())
	defer ctrl.Stop()

	host.Draw()

	snake := toColor(ui.DefaultPalette().Snake)
	for x := 8; x < 12; x++ {
		bg, _ := background(screen, x*cellColumns, 1)
		assert.Equal(t, snake, bg, "cell (%d,1)", x)
		bg, _ = background(screen, x*cellColumns+1, 1)
		assert.Equal(t, snake, bg)
	}

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, gridRune, r)
	bg, attrs := background(screen, 0, 0)
	assert.Equal(t, toColor(ui.DefaultPalette().Background), bg)
	assert.Zero(t, attrs&tcell.AttrDim)

	status := make([]rune, 0, 7)
	for x := 0; x < 7; x++ {
		r, _, _, _ := screen.GetContent(x, 13)
		status = append(status, r)
	}
	assert.Equal(t, "Stopped", string(status))
}

func TestHost_DimsWhileVeiled(t *testing.T) {
	host, screen, ctrl := newTestHost(t)
	ctrl.Start(time.Now())
	defer ctrl.Stop()

	ctrl.Tick()
	host.Draw()

	_, attrs := background(screen, 0, 0)
	assert.NotZero(t, attrs&tcell.AttrDim)
	bg, _ := background(screen, 16, 1)
	assert.Equal(t, toColor(ui.DefaultPalette().Snake), bg, "the veil does not paint over cells")
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want string
	}{
		{tcell.KeyUp, 0, ui.KeyArrowUp},
		{tcell.KeyDown, 0, ui.KeyArrowDown},
		{tcell.KeyLeft, 0, ui.KeyArrowLeft},
		{tcell.KeyRight, 0, ui.KeyArrowRight},
		{tcell.KeyEnter, 0, ui.KeyEnter},
		{tcell.KeyRune, ' ', ui.KeySpace},
		{tcell.KeyRune, '[', ui.KeyBracketLeft},
		{tcell.KeyRune, '\'', ui.KeyQuote},
	}
	for _, tt := range tests {
		got, ok := KeyCode(tt.key, tt.r)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got)
	}

	_, ok := KeyCode(tcell.KeyRune, 'w')
	assert.False(t, ok)
	_, ok = KeyCode(tcell.KeyTab, 0)
	assert.False(t, ok)
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(tcell.KeyEscape, 0))
	assert.True(t, IsQuit(tcell.KeyCtrlC, 0))
	assert.True(t, IsQuit(tcell.KeyRune, 'q'))
	assert.False(t, IsQuit(tcell.KeyRune, ' '))
}
