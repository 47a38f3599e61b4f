package emojitext

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/emojitext/asset"
	"github.com/gogpu/emojitext/buffer"
	"github.com/gogpu/emojitext/config"
	"github.com/gogpu/emojitext/inline"
	"github.com/gogpu/emojitext/render"
)

func TestInputSetText(t *testing.T) {
	in := newTestInput(t)
	in.SetText("hi [smile] there [nope]")

	assert.Equal(t, "hi [smile] there [nope]", in.Text())
	assert.Equal(t, "hi  there ", in.PlainText())

	spans := in.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, 3, spans[0].Start)
	assert.Equal(t, 10, spans[0].End)
	assert.Equal(t, "smile", spans[0].Name())
	assert.Equal(t, asset.Animated, spans[0].Image.Kind())
	assert.Equal(t, in.Images(), []*inline.Image{spans[0].Image})
}

func TestInputTokenOnly(t *testing.T) {
	in := newTestInput(t)
	for _, name := range []string{"smile", "heart"} {
		in.SetText("[" + name + "]")
		spans := in.Spans()
		require.Len(t, spans, 1, name)
		assert.Equal(t, 0, spans[0].Start)
		assert.Equal(t, len(name)+2, spans[0].End)
		assert.Empty(t, in.PlainText())
	}
}

func TestInputRescanReplacesObjects(t *testing.T) {
	in := newTestInput(t)
	in.SetText("[smile][heart]")
	before := in.Images()
	require.Len(t, before, 2)

	in.SetText("[smile][heart]")
	after := in.Images()
	require.Len(t, after, 2)
	for i := range before {
		assert.NotSame(t, before[i], after[i])
	}
}

func TestInputEditShiftsSpans(t *testing.T) {
	in := newTestInput(t)
	in.SetText("[heart] x")
	require.NoError(t, in.Buffer().Replace(0, 0, "ab"))

	spans := in.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, 2, spans[0].Start)
	assert.Equal(t, 9, spans[0].End)

	// Breaking the token removes its span.
	require.NoError(t, in.Buffer().Replace(3, 4, ""))
	assert.Empty(t, in.Spans())
	assert.Equal(t, "ab[eart] x", in.Text())
}

func TestInputEvents(t *testing.T) {
	in := newTestInput(t)
	ch := subscribe(t, in)

	in.SetText("a")
	assert.Equal(t, TextChanged{Text: "a", PlainText: "a"}, next(t, ch))

	require.NoError(t, in.InsertToken("smile"))
	assert.Equal(t, TextChanged{Text: "a[smile]", PlainText: "a"}, next(t, ch))
	assert.Equal(t, TokenInserted{Name: "smile", Text: "a[smile]"}, next(t, ch))

	assert.False(t, in.Commit(), "multiline input does not submit")
	in.Focus()
	in.Focus()
	assert.Equal(t, FocusGained{}, next(t, ch))
	in.Blur()
	in.Blur()
	assert.Equal(t, FocusLost{}, next(t, ch))
	assert.False(t, in.Focused())
}

func TestInputLaggingSubscriber(t *testing.T) {
	in := NewInput(WithAssets(testAssets(t)), WithConfiguration(testConfiguration(t)))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, ok := in.Subscribe(ctx, 1)
	require.True(t, ok)

	done := make(chan struct{})
	go func() {
		defer close(done)
		in.SetText("a")
		in.SetText("b")
		assert.NoError(t, in.InsertToken("smile"))
		in.Close()
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("edits blocked on an unread subscriber")
	}
	assert.Equal(t, "b[smile]", in.Text())

	select {
	case ev, ok := <-ch:
		if ok {
			assert.Equal(t, TextChanged{Text: "a", PlainText: "a"}, ev)
		}
	case <-time.After(time.Second):
	}
}

func TestInputSubmitSingleLine(t *testing.T) {
	style := DefaultStyle()
	style.Multiline = false
	in := newTestInput(t, WithStyle(style))
	ch := subscribe(t, in)

	in.SetText("ok [heart]")
	next(t, ch)
	assert.True(t, in.Commit())
	assert.Equal(t, Submitted{Text: "ok [heart]", PlainText: "ok "}, next(t, ch))
}

func TestInsertToken(t *testing.T) {
	in := newTestInput(t)
	in.SetText("abc")
	require.NoError(t, in.Select(2, 1))
	require.NoError(t, in.InsertToken("heart"))
	assert.Equal(t, "a[heart]c", in.Text())

	start, end := in.Selection()
	assert.Equal(t, 8, start)
	assert.Equal(t, 8, end)
	require.Len(t, in.Spans(), 1)

	require.NoError(t, in.InsertToken("😀"))
	assert.Equal(t, "a[heart][grinning_face]c", in.Text())

	assert.ErrorIs(t, in.InsertToken("nope"), ErrUnknownEmoji)
	assert.ErrorIs(t, in.InsertToken("😎"), ErrUnknownEmoji)

	bare := NewInput()
	defer bare.Close()
	assert.ErrorIs(t, bare.InsertToken("heart"), ErrNoConfiguration)
	assert.Empty(t, bare.Text())
}

func TestInputMaxLength(t *testing.T) {
	style := DefaultStyle()
	style.MaxLength = 4
	in := newTestInput(t, WithStyle(style))

	in.SetText("ab[smile]cdef")
	assert.Equal(t, "ab[smile]c", in.Text())
	assert.Len(t, in.Spans(), 1)

	assert.ErrorIs(t, in.InsertToken("heart"), ErrMaxLength)
	assert.Equal(t, "ab[smile]c", in.Text())

	require.NoError(t, in.Select(9, 10))
	require.NoError(t, in.InsertToken("heart"))
	assert.Equal(t, "ab[smile][heart]", in.Text())
}

func TestInputConfiguration(t *testing.T) {
	in := newTestInput(t)
	in.SetText("[smile] [other]")
	require.Len(t, in.Spans(), 1)

	err := in.SetConfigurationData([]byte(`{"emojis": `), config.FormatJSON)
	var pe *config.ParseError
	require.ErrorAs(t, err, &pe)
	assert.True(t, in.Configuration().Has("smile"), "previous configuration kept")
	assert.Len(t, in.Spans(), 1)

	data := []byte("[emojis.other]\nimage = \"heart.png\"\n")
	require.NoError(t, in.SetConfigurationData(data, config.FormatTOML))
	spans := in.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, "other", spans[0].Name())
	assert.Equal(t, 8, spans[0].Start)

	in.SetConfiguration(nil)
	assert.Empty(t, in.Spans())
	assert.Equal(t, "[smile] [other]", in.Text())
	assert.Equal(t, " ", in.PlainText())
}

func TestInputLifecycle(t *testing.T) {
	in := newTestInput(t)
	in.SetText("[smile][heart]")
	smile, heart := in.Images()[0], in.Images()[1]
	assert.Equal(t, inline.Stopped, smile.State(), "detached input does not animate")

	in.Attach()
	assert.Equal(t, inline.Playing, smile.State())
	assert.Equal(t, inline.Stopped, heart.State(), "static images never play")

	in.SetVisible(false)
	assert.Equal(t, inline.Paused, smile.State())

	in.SetText("[smile]")
	fresh := in.Images()[0]
	assert.Equal(t, inline.Stopped, fresh.State(), "hidden input leaves new objects stopped")
	assert.Equal(t, inline.Stopped, smile.State(), "discarded objects are stopped")

	in.SetVisible(true)
	assert.Equal(t, inline.Playing, fresh.State())

	in.SetText("[smile] more")
	fresh = in.Images()[0]
	assert.Equal(t, inline.Playing, fresh.State(), "rescan while displayed keeps animating")

	fresh.Advance()
	in.Detach()
	assert.Equal(t, inline.Stopped, fresh.State())
	assert.Equal(t, 0, fresh.FrameIndex())
	assert.False(t, in.Attached())
}

func TestInputAnimatesThroughDispatcher(t *testing.T) {
	loop := inline.NewLoop()
	frames := 0
	in := newTestInput(t, WithDispatcher(loop), WithInvalidate(func() { frames++ }))
	in.SetText("[smile]")
	in.Attach()
	img := in.Images()[0]

	require.Eventually(t, func() bool { return loop.Pending() > 0 }, time.Second, 5*time.Millisecond)
	loop.Flush()
	assert.Equal(t, 1, img.FrameIndex())
	assert.Positive(t, frames)

	in.Detach()
	assert.Equal(t, 0, img.FrameIndex())
}

func TestInputWithBuffer(t *testing.T) {
	b := buffer.New("x [heart]")
	in := newTestInput(t, WithBuffer(b))
	assert.Same(t, b, in.Buffer())
	require.Len(t, in.Spans(), 1)
	assert.Len(t, b.All(), 1)

	in.Close()
	b.SetText("[heart]")
	assert.Len(t, in.Spans(), 0, "closed input no longer rescans")
}

func TestInputDraw(t *testing.T) {
	face := newFace(t)
	in := newTestInput(t)
	in.SetText("a[heart]")

	l := in.Measure(face)
	require.Len(t, l.Lines, 1)
	require.Len(t, l.Lines[0].Runs, 2)

	dst := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	require.NoError(t, in.Draw(render.NewCanvas(dst, face, color.Black), 0, 0))

	run := l.Lines[0].Runs[1]
	p, err := run.Image.Measure(l.Metrics)
	require.NoError(t, err)
	c := dst.RGBAAt(run.X+p.Width/2, l.Lines[0].Y+p.Offset+p.Height/2)
	assert.Greater(t, c.R, uint8(0xf0))
}

func TestInputPlaceholder(t *testing.T) {
	style := DefaultStyle()
	style.Placeholder = "say hi"
	in := newTestInput(t, WithStyle(style))
	l := in.Measure(newFace(t))
	require.Len(t, l.Lines, 1)
	assert.Equal(t, "say hi", l.Lines[0].Runs[0].Text)
	assert.Empty(t, in.Text())
}
