package inline

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/emojitext/asset"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// gifBytes encodes a w x h animation with one solid frame per color.
func gifBytes(t *testing.T, w, h int, delay int, colors ...color.Color) []byte {
	t.Helper()
	palette := color.Palette{color.Transparent, red, green, blue}
	g := &gif.GIF{Config: image.Config{Width: w, Height: h, ColorModel: palette}}
	for _, c := range colors {
		frame := image.NewPaletted(image.Rect(0, 0, w, h), palette)
		idx := uint8(palette.Index(c))
		for i := range frame.Pix {
			frame.Pix[i] = idx
		}
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	return buf.Bytes()
}

type countingSource struct {
	asset.FSSource
	reads int
}

func (s *countingSource) ReadAsset(name string) ([]byte, error) {
	s.reads++
	return s.FSSource.ReadAsset(name)
}

func testSource(t *testing.T) *countingSource {
	t.Helper()
	return &countingSource{FSSource: asset.FSSource{FS: fstest.MapFS{
		"emoji/smile.gif":  {Data: gifBytes(t, 8, 8, 2, red, green, blue)},
		"emoji/still.gif":  {Data: gifBytes(t, 8, 8, 2, red)},
		"emoji/heart.png":  {Data: pngBytes(t, 12, 6, red)},
		"emoji/fake.gif":   {Data: pngBytes(t, 4, 4, green)},
		"emoji/party.webp": {Data: pngBytes(t, 4, 4, blue)},
		"emoji/broken.png": {Data: []byte("not an image")},
		"emoji/broken.gif": {Data: []byte("GIF89a garbage")},
	}}}
}

type drawCall struct {
	r    image.Rectangle
	size image.Point
	at   color.Color
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) DrawImage(r image.Rectangle, src image.Image) {
	b := src.Bounds()
	c.calls = append(c.calls, drawCall{r: r, size: b.Size(), at: src.At(b.Min.X, b.Min.Y)})
}
