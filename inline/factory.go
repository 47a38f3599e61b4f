package inline

import (
	"image"
	"log/slog"

	"github.com/gogpu/emojitext/asset"
	"github.com/gogpu/emojitext/config"
	"github.com/gogpu/emojitext/internal/log"
)

// Factory constructs Images from definitions.
type Factory struct {
	source     asset.Source
	dispatcher Dispatcher
	worker     *Worker
	onFrame    func()
}

// Option configures a Factory.
type Option func(*Factory)

// WithDispatcher sets the owner-thread dispatcher. Animation timers post
// frame ticks to it; without one animations only advance through Advance.
func WithDispatcher(d Dispatcher) Option {
	return func(f *Factory) {
		f.dispatcher = d
	}
}

// WithWorker decodes static images on w and delivers results through the
// dispatcher. It has no effect without WithDispatcher.
func WithWorker(w *Worker) Option {
	return func(f *Factory) {
		f.worker = w
	}
}

// WithInvalidate sets a callback run on the owner thread whenever an image
// changes its visual: a new animation frame or a finished static decode.
func WithInvalidate(fn func()) Option {
	return func(f *Factory) {
		f.onFrame = fn
	}
}

// NewFactory creates a factory reading assets from src. A nil src makes
// every image load without a visual.
func NewFactory(src asset.Source, opts ...Option) *Factory {
	f := &Factory{source: src}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Async reports whether static decodes run in the background.
func (f *Factory) Async() bool {
	return f.dispatcher != nil && f.worker != nil
}

// Pass returns a factory sharing f's settings whose asset reads are cached
// for the lifetime of the returned factory. Use one per scan pass.
func (f *Factory) Pass() *Factory {
	p := *f
	if f.source != nil {
		p.source = asset.NewCache(f.source)
	}
	return &p
}

// New builds the image for def. It never fails: decode errors degrade the
// image to a blank placeholder.
func (f *Factory) New(def config.Definition) *Image {
	img := &Image{def: def, kind: asset.Classify(def.Image)}
	logger := log.Get().With("emoji", def.Name, "image", def.Image)

	var data []byte
	if f.source != nil {
		var err error
		data, err = f.source.ReadAsset(asset.Path(def.Image))
		if err != nil {
			logger.Warn("inline: asset read failed", "err", err)
		}
	}

	if img.kind == asset.Animated {
		anim, err := decodeAnimated(data, asset.Ext(def.Image))
		if err == nil {
			img.player = newPlayer(anim, f.dispatcher, f.onFrame)
			img.loaded = true
			logger.Debug("inline: decoded animation", "frames", len(anim.frames))
			return img
		}
		logger.Debug("inline: animated decode failed, trying static", "err", err)
		img.kind = asset.Static
	}

	if len(data) == 0 {
		img.loaded = true
		return img
	}

	if !f.Async() {
		img.deliver(staticFrame(data, logger))
		return img
	}

	dispatcher, onFrame := f.dispatcher, f.onFrame
	f.worker.Go(func() {
		still := staticFrame(data, logger)
		dispatcher.Post(func() {
			img.deliver(still)
			if onFrame != nil {
				onFrame()
			}
		})
	})
	return img
}

func staticFrame(data []byte, logger *slog.Logger) image.Image {
	still, err := decodeStatic(data)
	if err != nil {
		logger.Warn("inline: decode failed, using blank placeholder", "err", err)
		return nil
	}
	return still
}
