package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayList_FullClearDropsOps(t *testing.T) {
	dl := NewDisplayList(100, 100)
	dl.FillRect(image.Rect(0, 0, 10, 10), color.White)
	dl.FillRect(image.Rect(10, 0, 20, 10), color.White)
	require.Len(t, dl.Ops(), 2)

	dl.ClearRect(image.Rect(0, 0, 50, 50))
	require.Len(t, dl.Ops(), 3, "partial clear is recorded")
	assert.Equal(t, OpClear, dl.Ops()[2].Kind)

	dl.ClearRect(dl.Bounds())
	assert.Empty(t, dl.Ops())
}

func TestDisplayList_Resize(t *testing.T) {
	dl := NewDisplayList(10, 10)
	dl.FillRect(image.Rect(0, 0, 1, 1), color.White)

	dl.Resize(480, 320)

	assert.Equal(t, image.Rect(0, 0, 480, 320), dl.Bounds())
	assert.Empty(t, dl.Ops(), "resizing wipes the canvas")
}

func TestDisplayList_Path(t *testing.T) {
	dl := NewDisplayList(10, 10)

	dl.BeginPath()
	dl.LineTo(1, 1) // no pen yet: only moves it
	dl.LineTo(2, 2)
	dl.MoveTo(5, 5)
	dl.LineTo(5, 9)
	dl.Stroke(color.Black)

	require.Len(t, dl.Ops(), 1)
	assert.Equal(t, []Line{
		{From: image.Pt(1, 1), To: image.Pt(2, 2)},
		{From: image.Pt(5, 5), To: image.Pt(5, 9)},
	}, dl.Ops()[0].Lines)

	dl.BeginPath()
	dl.Stroke(color.Black)
	assert.Len(t, dl.Ops(), 1, "empty paths are not recorded")
	assert.Equal(t, 1, dl.Count(OpStroke))
	assert.Equal(t, 0, dl.Count(OpFill))
}
