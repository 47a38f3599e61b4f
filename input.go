package emojitext

import (
	"context"
	"fmt"

	"github.com/guiguan/caster"
	"golang.org/x/image/font"

	"github.com/gogpu/emojitext/buffer"
	"github.com/gogpu/emojitext/config"
	"github.com/gogpu/emojitext/inline"
	"github.com/gogpu/emojitext/internal/log"
	"github.com/gogpu/emojitext/render"
	"github.com/gogpu/emojitext/span"
	"github.com/gogpu/emojitext/token"
)

// TextBuffer is the editable, decorated text an Input works on.
// *buffer.Buffer implements it.
//
// OnChange listeners must run synchronously after every mutation.
type TextBuffer interface {
	Text() string
	Replace(start, end int, s string) error
	Selection() (start, end int)
	Select(start, end int) error
	OnChange(fn func(buffer.Change)) (remove func())
	Attach(start, end int, v any) (*buffer.Decoration, error)
	All() []*buffer.Decoration
	DetachAll(match func(*buffer.Decoration) bool) int
}

// Input is an editable chat input rendering emoji tokens inline.
//
// Every change to the buffer discards all image decorations and rescans the
// whole text. Input is not safe for concurrent use: call it from the thread
// that drives the dispatcher.
type Input struct {
	view

	buf     TextBuffer
	images  []*inline.Image
	cast    *caster.Caster
	remove  func()
	focused bool
}

// NewInput creates an input. Call Close to release its event broadcaster.
func NewInput(opts ...Option) *Input {
	in := &Input{cast: caster.New(context.Background())}
	in.view = newView(opts, in.Images)
	in.buf = in.opts.buffer
	if in.buf == nil {
		in.buf = buffer.New("")
	}
	in.remove = in.buf.OnChange(in.changed)
	in.rescan()
	return in
}

// Close detaches from the buffer, stops all animations and ends every
// subscription.
func (in *Input) Close() {
	if in.remove != nil {
		in.remove()
		in.remove = nil
	}
	release(in.images)
	in.cast.Close()
}

// Subscribe returns a channel receiving the input's events until ctx is
// done or the input is closed. Publishing never blocks: an event that does
// not fit in a subscriber's channel is dropped for that subscriber.
func (in *Input) Subscribe(ctx context.Context, capacity uint) (<-chan any, bool) {
	ch, ok := in.cast.Sub(ctx, capacity)
	return ch, ok
}

func (in *Input) publish(ev any) {
	if !in.cast.TryPub(ev) {
		log.Get().Debug("emojitext: event dropped", "event", fmt.Sprintf("%T", ev))
	}
}

// Buffer returns the edited buffer.
func (in *Input) Buffer() TextBuffer { return in.buf }

// SetConfiguration replaces the configuration wholesale and rescans the
// text. A nil configuration disables scanning.
func (in *Input) SetConfiguration(c *config.Configuration) {
	in.setConfiguration(c)
	in.rescan()
}

// SetConfigurationData parses and installs a configuration. On error the
// previous configuration stays in place.
func (in *Input) SetConfigurationData(data []byte, format config.Format) error {
	c, err := parseConfiguration(data, format)
	if err != nil {
		return err
	}
	in.SetConfiguration(c)
	return nil
}

// Text returns the rendered text, tokens included.
func (in *Input) Text() string { return in.buf.Text() }

// PlainText returns the text with every token removed.
func (in *Input) PlainText() string { return token.PlainText(in.buf.Text()) }

// SetText replaces the whole text.
func (in *Input) SetText(text string) {
	if err := in.buf.Replace(0, len(in.buf.Text()), text); err != nil {
		log.Get().Warn("emojitext: set text", "err", err)
	}
}

// Select sets the selection in byte offsets.
func (in *Input) Select(start, end int) error { return in.buf.Select(start, end) }

// Selection returns the selection in byte offsets.
func (in *Input) Selection() (start, end int) { return in.buf.Selection() }

// InsertToken replaces the selection with the token for name. name may also
// be a single Unicode emoji whose slug names a configured emoji.
func (in *Input) InsertToken(name string) error {
	if in.cfg == nil {
		return ErrNoConfiguration
	}
	if !in.cfg.Has(name) {
		alt, ok := token.NameForUnicode(name)
		if !ok || !in.cfg.Has(alt) {
			return ErrUnknownEmoji
		}
		name = alt
	}

	tok := token.Format(name)
	text := in.buf.Text()
	start, end := in.buf.Selection()
	if start > end {
		start, end = end, start
	}
	if limit := in.opts.style.MaxLength; limit > 0 {
		next := text[:start] + tok + text[end:]
		if token.DisplayLength(next, in.builder.Known) > limit {
			return ErrMaxLength
		}
	}
	if err := in.buf.Replace(start, end, tok); err != nil {
		return err
	}
	in.publish(TokenInserted{Name: name, Text: in.buf.Text()})
	return nil
}

// Commit reports an affirmative submit input such as the enter key. It
// fires Submitted and returns true only in single-line mode.
func (in *Input) Commit() bool {
	if in.opts.style.Multiline {
		return false
	}
	text := in.buf.Text()
	in.publish(Submitted{Text: text, PlainText: token.PlainText(text)})
	return true
}

// Focus marks the input focused.
func (in *Input) Focus() {
	if in.focused {
		return
	}
	in.focused = true
	in.publish(FocusGained{})
}

// Blur marks the input unfocused.
func (in *Input) Blur() {
	if !in.focused {
		return
	}
	in.focused = false
	in.publish(FocusLost{})
}

// Focused reports whether the input has focus.
func (in *Input) Focused() bool { return in.focused }

// Spans returns the current spans in text order.
func (in *Input) Spans() []span.Span {
	var spans []span.Span
	for _, d := range in.buf.All() {
		if img, ok := d.Value.(*inline.Image); ok {
			spans = append(spans, span.Span{Start: d.Start, End: d.End, Image: img})
		}
	}
	return spans
}

// Images returns the images of the current span generation in text order.
func (in *Input) Images() []*inline.Image { return in.images }

// Measure lays out the text with face. An empty text lays out the
// placeholder.
func (in *Input) Measure(face font.Face) *render.Layout {
	return render.LayoutSegments(in.segments(), face)
}

// Draw draws the text with its top-left corner at (x, y).
func (in *Input) Draw(c *render.Canvas, x, y int) error {
	return render.Draw(c, in.Measure(c.Face()), x, y)
}

func (in *Input) segments() []span.Segment {
	text := in.buf.Text()
	if text == "" && in.opts.style.Placeholder != "" {
		return []span.Segment{{Text: in.opts.style.Placeholder}}
	}
	return span.Assemble(text, in.Spans())
}

// changed runs after every buffer mutation.
func (in *Input) changed(buffer.Change) {
	text := in.buf.Text()
	if limit := in.opts.style.MaxLength; limit > 0 && token.DisplayLength(text, in.builder.Known) > limit {
		// The truncating replace notifies again.
		in.SetText(token.Truncate(text, limit, in.builder.Known))
		return
	}
	in.rescan()
	in.publish(TextChanged{Text: text, PlainText: token.PlainText(text)})
}

// rescan replaces every image decoration with a fresh span generation.
func (in *Input) rescan() {
	release(in.images)
	in.buf.DetachAll(isImage)

	spans := in.builder.Build(in.buf.Text())
	in.images = span.Images(spans)
	for _, s := range spans {
		if _, err := in.buf.Attach(s.Start, s.End, s.Image); err != nil {
			log.Get().Warn("emojitext: attach span", "name", s.Name(), "err", err)
		}
	}
	in.adopt(in.images)
}

func isImage(d *buffer.Decoration) bool {
	_, ok := d.Value.(*inline.Image)
	return ok
}
