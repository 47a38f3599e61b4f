package emojitext

import (
	"iter"

	"github.com/gogpu/emojitext/asset"
	"github.com/gogpu/emojitext/config"
	"github.com/gogpu/emojitext/inline"
	"github.com/gogpu/emojitext/internal/log"
	"github.com/gogpu/emojitext/lifecycle"
	"github.com/gogpu/emojitext/span"
)

// view is the state shared by Input and Label: the active configuration,
// the span builder over it and the lifecycle coordinator.
type view struct {
	opts    options
	factory *inline.Factory
	cfg     *config.Configuration
	builder *span.Builder
	coord   *lifecycle.Coordinator
}

func newView(opts []Option, placed func() []*inline.Image) view {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	v := view{opts: o, factory: o.factory()}
	v.coord = lifecycle.NewCoordinator(func() iter.Seq[lifecycle.Animator] {
		return lifecycle.Each(placed())
	})
	v.setConfiguration(o.config)
	return v
}

func (v *view) setConfiguration(c *config.Configuration) {
	v.cfg = c
	v.builder = span.NewBuilder(asset.NewResolver(c), v.factory)
	log.Get().Info("emojitext: configuration set", "emojis", c.Len())
}

// parseConfiguration parses data without touching the current configuration.
func parseConfiguration(data []byte, format config.Format) (*config.Configuration, error) {
	c, err := config.Parse(data, format)
	if err != nil {
		log.Get().Warn("emojitext: keeping previous configuration", "format", format, "err", err)
		return nil, err
	}
	return c, nil
}

// adopt brings freshly built images to the host state.
func (v *view) adopt(images []*inline.Image) {
	v.coord.Adopt(lifecycle.Each(images))
}

// release stops images of a discarded span generation so their timers die.
func release(images []*inline.Image) {
	for _, img := range images {
		img.Stop()
	}
}

// Configuration returns the active configuration, nil when none is set.
func (v *view) Configuration() *config.Configuration { return v.cfg }

// Style returns the view style.
func (v *view) Style() Style { return v.opts.style }

// Attach reports that the host view was attached. Animations start when the
// view is visible.
func (v *view) Attach() { v.coord.Attach() }

// Detach reports that the host view was detached. Animations stop and
// rewind.
func (v *view) Detach() { v.coord.Detach() }

// SetVisible reports a visibility change. Animations pause while hidden and
// resume when shown again.
func (v *view) SetVisible(visible bool) { v.coord.SetVisible(visible) }

// Attached reports whether the host view is attached.
func (v *view) Attached() bool { return v.coord.Attached() }
