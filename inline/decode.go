package inline

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"time"

	// Static image formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

// Decode errors. They are logged, never returned to callers of Factory.
var (
	// ErrNoData is returned when the asset could not be read.
	ErrNoData = errors.New("inline: no image data")

	// ErrAnimationUnsupported is returned for animated formats without an
	// animation decoder (WebP).
	ErrAnimationUnsupported = errors.New("inline: animated decode not supported for format")

	// ErrNoFrames is returned for an animation without frames.
	ErrNoFrames = errors.New("inline: animation has no frames")
)

// defaultDelay replaces GIF frame delays that browsers also treat as too short.
const defaultDelay = 100 * time.Millisecond

// animation is a decoded sequence of fully composited frames.
type animation struct {
	frames []image.Image
	delays []time.Duration
}

// decodeAnimated decodes data as an animation of the given image format.
func decodeAnimated(data []byte, ext string) (*animation, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	if ext != "gif" {
		return nil, ErrAnimationUnsupported
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, ErrNoFrames
	}
	return compositeGIF(g), nil
}

// compositeGIF renders each GIF frame onto a full-size canvas, applying the
// disposal method of the previous frame.
func compositeGIF(g *gif.GIF) *animation {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		for _, frame := range g.Image {
			bounds = bounds.Union(frame.Bounds())
		}
	}

	canvas := image.NewRGBA(bounds)
	anim := &animation{
		frames: make([]image.Image, len(g.Image)),
		delays: make([]time.Duration, len(g.Image)),
	}
	for i, frame := range g.Image {
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		xdraw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, xdraw.Over)
		anim.frames[i] = cloneRGBA(canvas)
		anim.delays[i] = frameDelay(g, i)

		switch disposal {
		case gif.DisposalBackground:
			xdraw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return anim
}

func frameDelay(g *gif.GIF, i int) time.Duration {
	if i >= len(g.Delay) || g.Delay[i] < 2 {
		return defaultDelay
	}
	return time.Duration(g.Delay[i]) * 10 * time.Millisecond
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// decodeStatic decodes data as a single image in any registered format.
func decodeStatic(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}
