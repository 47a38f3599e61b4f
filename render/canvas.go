package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas draws text and inline image frames onto a destination image.
// It implements inline.Canvas.
type Canvas struct {
	dst  draw.Image
	face font.Face
	src  image.Image
}

// NewCanvas creates a canvas drawing text with face in color col.
func NewCanvas(dst draw.Image, face font.Face, col color.Color) *Canvas {
	if col == nil {
		col = color.Black
	}
	return &Canvas{dst: dst, face: face, src: image.NewUniform(col)}
}

// Image returns the destination image.
func (c *Canvas) Image() draw.Image { return c.dst }

// DrawImage composites src over the rectangle r.
func (c *Canvas) DrawImage(r image.Rectangle, src image.Image) {
	xdraw.Draw(c.dst, r, src, src.Bounds().Min, xdraw.Over)
}

// DrawString draws s with its pen origin at x on baseline y and returns the
// pen position after the last glyph.
func (c *Canvas) DrawString(s string, x, y int) int {
	if s == "" || c.face == nil {
		return x
	}
	d := &font.Drawer{
		Dst:  c.dst,
		Src:  c.src,
		Face: c.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
	return d.Dot.X.Round()
}

// Face returns the text face.
func (c *Canvas) Face() font.Face { return c.face }
