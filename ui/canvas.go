package ui

import (
	"image"
	"image/color"
)

// Canvas is a minimal 2D drawing context, modelled on the browser's
// CanvasRenderingContext2D.
type Canvas interface {
	Resize(width, height int)
	Bounds() image.Rectangle
	ClearRect(r image.Rectangle)
	BeginPath()
	MoveTo(x, y int)
	LineTo(x, y int)
	Stroke(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
}

type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpStroke
)

// Line is one segment of a stroked path.
type Line struct {
	From, To image.Point
}

// Op is a recorded drawing operation.
type Op struct {
	Kind  OpKind
	Rect  image.Rectangle
	Lines []Line
	Color color.Color
}

// DisplayList is a Canvas that records operations so that a host can replay
// them every frame.
type DisplayList struct {
	bounds image.Rectangle
	ops    []Op
	path   []Line
	pen    image.Point
	hasPen bool
}

func NewDisplayList(width, height int) *DisplayList {
	return &DisplayList{bounds: image.Rect(0, 0, width, height)}
}

// Resize changes the canvas size. Like a browser canvas, resizing wipes the
// content.
func (d *DisplayList) Resize(width, height int) {
	d.bounds = image.Rect(0, 0, width, height)
	d.ops = d.ops[:0]
}

func (d *DisplayList) Bounds() image.Rectangle {
	return d.bounds
}

// ClearRect erases r. A clear covering the whole canvas drops every earlier
// operation.
func (d *DisplayList) ClearRect(r image.Rectangle) {
	if d.bounds.In(r) {
		d.ops = d.ops[:0]
		return
	}
	d.ops = append(d.ops, Op{Kind: OpClear, Rect: r.Intersect(d.bounds)})
}

func (d *DisplayList) BeginPath() {
	d.path = nil
	d.hasPen = false
}

func (d *DisplayList) MoveTo(x, y int) {
	d.pen = image.Pt(x, y)
	d.hasPen = true
}

func (d *DisplayList) LineTo(x, y int) {
	to := image.Pt(x, y)
	if d.hasPen {
		d.path = append(d.path, Line{From: d.pen, To: to})
	}
	d.pen = to
	d.hasPen = true
}

// Stroke records the current path. The path stays open, so a second Stroke
// draws it again.
func (d *DisplayList) Stroke(c color.Color) {
	if len(d.path) == 0 {
		return
	}
	lines := make([]Line, len(d.path))
	copy(lines, d.path)
	d.ops = append(d.ops, Op{Kind: OpStroke, Lines: lines, Color: c})
}

func (d *DisplayList) FillRect(r image.Rectangle, c color.Color) {
	d.ops = append(d.ops, Op{Kind: OpFill, Rect: r, Color: c})
}

// Ops returns the recorded operations. The slice is only valid until the
// next drawing call.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Count returns how many operations of kind are recorded.
func (d *DisplayList) Count(kind OpKind) int {
	n := 0
	for _, op := range d.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
