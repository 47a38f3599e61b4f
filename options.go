package emojitext

import (
	"io/fs"

	"github.com/gogpu/emojitext/asset"
	"github.com/gogpu/emojitext/config"
	"github.com/gogpu/emojitext/inline"
)

// Option configures an Input or a Label during creation.
//
// Example:
//
//	loop := inline.NewLoop()
//	in := emojitext.NewInput(
//	    emojitext.WithAssets(os.DirFS("assets")),
//	    emojitext.WithConfiguration(config.Default()),
//	    emojitext.WithDispatcher(loop),
//	)
type Option func(*options)

// options holds optional configuration shared by Input and Label.
type options struct {
	source     asset.Source
	dispatcher inline.Dispatcher
	worker     *inline.Worker
	invalidate func()
	buffer     TextBuffer
	style      Style
	config     *config.Configuration
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		style: DefaultStyle(),
	}
}

// WithAssets reads emoji images from fsys under the "emoji" directory.
func WithAssets(fsys fs.FS) Option {
	return func(o *options) {
		o.source = asset.FSSource{FS: fsys}
	}
}

// WithSource reads emoji images from src.
func WithSource(src asset.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithConfiguration sets the initial emoji configuration.
func WithConfiguration(c *config.Configuration) Option {
	return func(o *options) {
		o.config = c
	}
}

// WithDispatcher sets the owner-thread dispatcher animations and async
// decodes post to. Without one, animations only advance manually.
func WithDispatcher(d inline.Dispatcher) Option {
	return func(o *options) {
		o.dispatcher = d
	}
}

// WithWorker decodes static images in the background. It needs a
// dispatcher to deliver results.
func WithWorker(w *inline.Worker) Option {
	return func(o *options) {
		o.worker = w
	}
}

// WithInvalidate sets the callback run on the owner thread when an image
// visual changes and the view should be redrawn.
func WithInvalidate(fn func()) Option {
	return func(o *options) {
		o.invalidate = fn
	}
}

// WithBuffer sets the text buffer an Input edits. The default is an empty
// in-memory buffer. Label ignores it.
func WithBuffer(b TextBuffer) Option {
	return func(o *options) {
		o.buffer = b
	}
}

// WithStyle sets the cosmetic style.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

func (o *options) factory() *inline.Factory {
	var opts []inline.Option
	if o.dispatcher != nil {
		opts = append(opts, inline.WithDispatcher(o.dispatcher))
	}
	if o.worker != nil {
		opts = append(opts, inline.WithWorker(o.worker))
	}
	if o.invalidate != nil {
		opts = append(opts, inline.WithInvalidate(o.invalidate))
	}
	return inline.NewFactory(o.source, opts...)
}
