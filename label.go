package emojitext

import (
	"golang.org/x/image/font"

	"github.com/gogpu/emojitext/config"
	"github.com/gogpu/emojitext/inline"
	"github.com/gogpu/emojitext/render"
	"github.com/gogpu/emojitext/span"
	"github.com/gogpu/emojitext/token"
)

// Label is a display-only view of token text. Unknown tokens are shown
// verbatim. Label is not safe for concurrent use.
type Label struct {
	view

	text   string
	out    string
	segs   []span.Segment
	images []*inline.Image
}

// NewLabel creates a label.
func NewLabel(opts ...Option) *Label {
	l := &Label{}
	l.view = newView(opts, l.Images)
	return l
}

// SetText replaces the displayed text.
func (l *Label) SetText(text string) {
	l.text = text
	l.rebuild()
}

// SetConfiguration replaces the configuration wholesale and rebuilds the
// display.
func (l *Label) SetConfiguration(c *config.Configuration) {
	l.setConfiguration(c)
	l.rebuild()
}

// SetConfigurationData parses and installs a configuration. On error the
// previous configuration stays in place.
func (l *Label) SetConfigurationData(data []byte, format config.Format) error {
	c, err := parseConfiguration(data, format)
	if err != nil {
		return err
	}
	l.SetConfiguration(c)
	return nil
}

// Text returns the displayed text.
func (l *Label) Text() string { return l.out }

// PlainText returns the text with every token removed.
func (l *Label) PlainText() string { return token.PlainText(l.text) }

// Segments returns the display segments in order.
func (l *Label) Segments() []span.Segment { return l.segs }

// Images returns the emoji images in display order.
func (l *Label) Images() []*inline.Image { return l.images }

// Measure lays out the label with face.
func (l *Label) Measure(face font.Face) *render.Layout {
	return render.LayoutSegments(l.segs, face)
}

// Draw draws the label with its top-left corner at (x, y).
func (l *Label) Draw(c *render.Canvas, x, y int) error {
	return render.Draw(c, l.Measure(c.Face()), x, y)
}

// Close stops all animations.
func (l *Label) Close() {
	release(l.images)
	l.images = nil
}

func (l *Label) rebuild() {
	release(l.images)
	l.out, l.segs = l.builder.Segments(l.text)
	l.images = span.SegmentImages(l.segs)
	l.adopt(l.images)
}
