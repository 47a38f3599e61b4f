package render

import (
	"image"
	"image/color"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/gogpu/emojitext/inline"
	"github.com/gogpu/emojitext/internal/log"
	"github.com/gogpu/emojitext/layout"
	"github.com/gogpu/emojitext/span"
)

// Run is a positioned piece of a line: a text run or one inline image.
type Run struct {
	// Text is the run text. For an image run it is the token.
	Text string

	// Image is set for image runs.
	Image *inline.Image

	// X is the pen offset from the line start.
	X int

	// Width is the horizontal advance.
	Width int
}

// Line is one laid out line.
type Line struct {
	Runs []Run

	// Width is the total advance of all runs.
	Width int

	// Ascent and Descent are the widened line envelope.
	Ascent  int
	Descent int

	// Y is the baseline position within the layout.
	Y int
}

// Height returns the envelope height of the line.
func (l *Line) Height() int {
	return l.Descent - l.Ascent
}

// Layout is the result of laying out a segment list.
type Layout struct {
	Lines []Line

	// Metrics are the font metrics every line starts from.
	Metrics layout.Metrics

	// Width is the widest line, Height the sum of line heights.
	Width  int
	Height int
}

// LayoutSegments lays out segs with face, breaking lines at '\n'.
// Images with an invalid declared size get no advance and are logged.
func LayoutSegments(segs []span.Segment, face font.Face) *Layout {
	if face == nil {
		return &Layout{}
	}
	m := layout.FromFace(face)
	l := &Layout{Metrics: m}

	cur := Line{}
	env := layout.NewEnvelope(m)
	flush := func() {
		cur.Ascent, cur.Descent = env.Ascent, env.Descent
		l.Lines = append(l.Lines, cur)
		cur = Line{}
		env = layout.NewEnvelope(m)
	}

	for _, seg := range segs {
		if seg.Span != nil {
			img := seg.Span.Image
			p, err := img.Measure(m)
			if err != nil {
				log.Get().Warn("render: skipping image", "name", img.Name(), "err", err)
				continue
			}
			env.Include(p.Metrics())
			cur.add(Run{Text: seg.Text, Image: img, Width: p.Width})
			continue
		}
		for i, part := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				flush()
			}
			if part != "" {
				cur.add(Run{Text: part, Width: font.MeasureString(face, part).Round()})
			}
		}
	}
	flush()

	y := 0
	for i := range l.Lines {
		ln := &l.Lines[i]
		ln.Y = y - ln.Ascent
		y += ln.Height()
		l.Width = max(l.Width, ln.Width)
	}
	l.Height = y
	return l
}

func (l *Line) add(r Run) {
	r.X = l.Width
	l.Runs = append(l.Runs, r)
	l.Width += r.Width
}

// Draw draws l with its top-left corner at (x, y). Image placement is
// recomputed from the layout's font metrics at draw time.
func Draw(c *Canvas, l *Layout, x, y int) error {
	for _, ln := range l.Lines {
		baseline := y + ln.Y
		for _, r := range ln.Runs {
			if r.Image == nil {
				c.DrawString(r.Text, x+r.X, baseline)
				continue
			}
			if _, err := r.Image.Draw(c, x+r.X, baseline, l.Metrics); err != nil {
				return err
			}
		}
	}
	return nil
}

// Render lays out segs and draws them onto a new image sized to the layout
// plus padding on every side, filled with bg.
func Render(segs []span.Segment, face font.Face, fg, bg color.Color, padding int) (*image.RGBA, error) {
	l := LayoutSegments(segs, face)
	padding = max(padding, 0)
	dst := image.NewRGBA(image.Rect(0, 0, l.Width+2*padding, l.Height+2*padding))
	if bg != nil {
		xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	}
	if err := Draw(NewCanvas(dst, face, fg), l, padding, padding); err != nil {
		return nil, err
	}
	return dst, nil
}
