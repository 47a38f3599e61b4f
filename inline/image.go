package inline

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/gogpu/emojitext/asset"
	"github.com/gogpu/emojitext/config"
	"github.com/gogpu/emojitext/internal/cache"
	"github.com/gogpu/emojitext/layout"
)

// Canvas receives inline image frames at draw time.
// src is already scaled to the size of r.
type Canvas interface {
	DrawImage(r image.Rectangle, src image.Image)
}

// Image is an inline image object over one emoji token.
type Image struct {
	def    config.Definition
	kind   asset.Kind
	loaded bool
	still  image.Image
	player *player

	scaled *cache.Frames
}

// scaledFrameLimit bounds the scaled frames kept per image.
const scaledFrameLimit = 32

// Name returns the emoji name.
func (img *Image) Name() string { return img.def.Name }

// Definition returns the definition the image was built from.
func (img *Image) Definition() config.Definition { return img.def }

// Kind returns Animated only when an animation was decoded.
// An animated asset whose animation failed to decode reports Static.
func (img *Image) Kind() asset.Kind { return img.kind }

// Loaded reports whether decoding has finished, successfully or not.
func (img *Image) Loaded() bool { return img.loaded }

// HasVisual reports whether the image has something to draw.
func (img *Image) HasVisual() bool { return img.Frame() != nil }

// DeclaredSize returns the declared width and height.
func (img *Image) DeclaredSize() (w, h int) { return img.def.Width, img.def.Height }

// State returns the playback state. Static images are always Stopped.
func (img *Image) State() State {
	if img.player == nil {
		return Stopped
	}
	return img.player.state
}

// FrameCount returns the number of frames, 0 without a visual.
func (img *Image) FrameCount() int {
	switch {
	case img.player != nil:
		return len(img.player.anim.frames)
	case img.still != nil:
		return 1
	}
	return 0
}

// FrameIndex returns the index of the current frame.
func (img *Image) FrameIndex() int {
	if img.player == nil {
		return 0
	}
	return img.player.index
}

// Frame returns the current frame, or nil when there is nothing to draw.
func (img *Image) Frame() image.Image {
	if img.player != nil {
		return img.player.frame()
	}
	return img.still
}

// Start begins playback. It is a no-op for static or unloaded images and
// when already playing.
func (img *Image) Start() {
	if img.player != nil {
		img.player.start()
	}
}

// Stop ends playback, cancels the frame timer and rewinds.
func (img *Image) Stop() {
	if img.player != nil {
		img.player.stop()
	}
}

// Pause holds the current frame. It is a no-op unless playing.
func (img *Image) Pause() {
	if img.player != nil {
		img.player.pause()
	}
}

// Resume continues playback after Pause.
func (img *Image) Resume() {
	if img.player != nil {
		img.player.resume()
	}
}

// Advance shows the next animation frame.
// Hosts without a Dispatcher use it to drive frames themselves.
func (img *Image) Advance() {
	if img.player != nil {
		img.player.advance()
	}
}

// Measure returns the placement of the image against font metrics m.
func (img *Image) Measure(m layout.Metrics) (layout.Placement, error) {
	return layout.Measure(m, img.def.Width, img.def.Height)
}

// Draw draws the current frame with its left edge at pen position x on
// baseline y. The placement is recomputed from m, never cached from Measure.
// An image without a visual draws nothing and returns the blank rectangle.
func (img *Image) Draw(c Canvas, x, y int, m layout.Metrics) (image.Rectangle, error) {
	r, err := layout.Place(m, img.def.Width, img.def.Height, x, y)
	if err != nil {
		return image.Rectangle{}, err
	}
	if src := img.scaledFrame(r.Dx(), r.Dy()); src != nil {
		c.DrawImage(r, src)
	}
	return r, nil
}

// scaledFrame returns the current frame resized to w x h, caching frames of
// one size.
func (img *Image) scaledFrame(w, h int) image.Image {
	src := img.Frame()
	if src == nil || w <= 0 || h <= 0 {
		return nil
	}
	if b := src.Bounds(); b.Dx() == w && b.Dy() == h {
		return src
	}
	if img.scaled == nil {
		img.scaled = cache.NewFrames(scaledFrameLimit)
	}
	return img.scaled.Get(img.FrameIndex(), image.Pt(w, h), func() image.Image {
		return resize.Resize(uint(w), uint(h), src, resize.Bilinear)
	})
}

// deliver installs a static decode result. It runs on the owner thread.
func (img *Image) deliver(still image.Image) {
	img.still = still
	img.kind = asset.Static
	img.loaded = true
	if img.scaled != nil {
		img.scaled.Clear()
	}
}
