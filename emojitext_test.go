package emojitext

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/emojitext/config"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
)

func gifData(t *testing.T) []byte {
	t.Helper()
	palette := color.Palette{color.Transparent, red, green}
	g := &gif.GIF{Config: image.Config{Width: 4, Height: 4, ColorModel: palette}}
	for _, idx := range []uint8{1, 2} {
		frame := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
		for i := range frame.Pix {
			frame.Pix[i] = idx
		}
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, 5)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	return buf.Bytes()
}

func pngData(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:], []byte{0xff, 0, 0, 0xff})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testAssets(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"emoji/smile.gif": {Data: gifData(t)},
		"emoji/heart.png": {Data: pngData(t)},
	}
}

const testConfig = `{
  "version": "1",
  "emojis": {
    "smile": {"name": "smile", "image": "smile.gif", "width": 24, "height": 24},
    "heart": {"name": "heart", "image": "heart.png", "width": 24, "height": 24},
    "grinning_face": {"name": "grinning_face", "image": "heart.png"}
  }
}`

func testConfiguration(t *testing.T) *config.Configuration {
	t.Helper()
	c, err := config.ParseJSON([]byte(testConfig))
	require.NoError(t, err)
	return c
}

func newTestInput(t *testing.T, opts ...Option) *Input {
	t.Helper()
	base := []Option{WithAssets(testAssets(t)), WithConfiguration(testConfiguration(t))}
	in := NewInput(append(base, opts...)...)
	t.Cleanup(in.Close)
	return in
}

func subscribe(t *testing.T, in *Input) <-chan any {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	ch, ok := in.Subscribe(ctx, 16)
	require.True(t, ok)
	return ch
}

func next(t *testing.T, ch <-chan any) any {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event")
		return nil
	}
}

func newFace(t *testing.T) font.Face {
	t.Helper()
	f, err := opentype.Parse(goregular.TTF)
	require.NoError(t, err)
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 20, DPI: 72})
	require.NoError(t, err)
	t.Cleanup(func() { _ = face.Close() })
	return face
}
