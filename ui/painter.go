package ui

import (
	"image"
	"image/color"

	"snake-canvas/game/types"
)

type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Snake      color.RGBA
	Reward     color.RGBA
	Veil       color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0x00, G: 0x51, B: 0x48, A: 0xff},
		Grid:       color.RGBA{R: 0x01, G: 0x41, B: 0x5b, A: 0xff},
		Snake:      color.RGBA{R: 0x01, G: 0x95, B: 0x87, A: 0xff},
		Reward:     color.RGBA{R: 0xcc, G: 0xea, B: 0x8d, A: 0xff},
		Veil:       color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	}
}

// CellRect returns the pixel rectangle of the cell at linear index idx.
func CellRect(idx, width, cellSize int) image.Rectangle {
	p := types.Grid{Width: width}.Point(idx)
	return image.Rect(p.X*cellSize, p.Y*cellSize, (p.X+1)*cellSize, (p.Y+1)*cellSize)
}

// Painter draws the world, the snake and the reward cell onto a canvas.
type Painter struct {
	canvas  Canvas
	palette Palette
}

func NewPainter(canvas Canvas, palette Palette) *Painter {
	return &Painter{canvas: canvas, palette: palette}
}

// DrawWorld strokes width+1 vertical and height+1 horizontal grid lines as a
// single path.
func (p *Painter) DrawWorld(width, height, cellSize int) {
	c := p.canvas
	c.BeginPath()
	for x := 0; x < width+1; x++ {
		c.MoveTo(cellSize*x, 0)
		c.LineTo(cellSize*x, height*cellSize)
	}
	for y := 0; y < height+1; y++ {
		c.MoveTo(0, cellSize*y)
		c.LineTo(width*cellSize, cellSize*y)
	}
	c.Stroke(p.palette.Grid)
}

// DrawRewardCell fills the reward cell; idx -1 means there is none.
func (p *Painter) DrawRewardCell(idx, width, cellSize int) {
	if idx < 0 {
		return
	}
	p.canvas.FillRect(CellRect(idx, width, cellSize), p.palette.Reward)
}

func (p *Painter) DrawSnake(cells []int, width, cellSize int) {
	for _, idx := range cells {
		p.canvas.FillRect(CellRect(idx, width, cellSize), p.palette.Snake)
	}
}

// DrawVeil covers the whole canvas with the veil colour at the given opacity
// in [0, 1].
func (p *Painter) DrawVeil(opacity float32) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	v := p.palette.Veil
	a := uint8(float32(v.A) * opacity)
	// image/color expects premultiplied alpha
	veil := color.RGBA{
		R: uint8(uint16(v.R) * uint16(a) / 0xff),
		G: uint8(uint16(v.G) * uint16(a) / 0xff),
		B: uint8(uint16(v.B) * uint16(a) / 0xff),
		A: a,
	}
	p.canvas.FillRect(p.canvas.Bounds(), veil)
}
