// Package lifecycle drives inline animations from host view events.
//
// The host reports attach, detach and visibility changes; the Coordinator
// applies the matching transition to every placed animation at once, in
// placement order:
//
//	attach            -> Start
//	detach            -> Stop
//	hidden (attached) -> Pause
//	visible again     -> Resume
package lifecycle

import (
	"iter"

	"github.com/gogpu/emojitext/internal/log"
)

// Animator is an object with playback controls. Every control must be
// idempotent and a no-op for objects that cannot animate.
type Animator interface {
	Start()
	Stop()
	Pause()
	Resume()
}

// Each adapts a slice of animators to a sequence.
func Each[T Animator](items []T) iter.Seq[Animator] {
	return func(yield func(Animator) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}
}

// Coordinator tracks host state and applies transitions to the currently
// placed animators. It is not safe for concurrent use; call it from the
// owner thread.
type Coordinator struct {
	placed   func() iter.Seq[Animator]
	attached bool
	visible  bool
}

// NewCoordinator creates a coordinator. placed returns the animators in
// placement order each time a transition runs.
func NewCoordinator(placed func() iter.Seq[Animator]) *Coordinator {
	return &Coordinator{placed: placed, visible: true}
}

// Attached reports whether the host is attached.
func (c *Coordinator) Attached() bool { return c.attached }

// Visible reports the last visibility the host reported.
func (c *Coordinator) Visible() bool { return c.visible }

// Active reports whether animations should be playing.
func (c *Coordinator) Active() bool { return c.attached && c.visible }

// Attach records that the host is attached and starts every animation
// when visible.
func (c *Coordinator) Attach() {
	if c.attached {
		return
	}
	c.attached = true
	if c.visible {
		c.apply("start", Animator.Start)
	}
}

// Detach records that the host is detached and stops every animation.
func (c *Coordinator) Detach() {
	if !c.attached {
		return
	}
	c.attached = false
	c.apply("stop", Animator.Stop)
}

// SetVisible records a visibility change. While attached, hiding pauses and
// showing resumes every animation. While detached only the state changes.
func (c *Coordinator) SetVisible(visible bool) {
	if c.visible == visible {
		return
	}
	c.visible = visible
	if !c.attached {
		return
	}
	if visible {
		c.apply("resume", Animator.Resume)
	} else {
		c.apply("pause", Animator.Pause)
	}
}

// Adopt brings newly placed animators to the current host state: they start
// when the host is attached and visible and are left stopped otherwise.
func (c *Coordinator) Adopt(animators iter.Seq[Animator]) {
	if !c.Active() {
		return
	}
	for a := range animators {
		a.Start()
	}
}

func (c *Coordinator) apply(name string, fn func(Animator)) {
	if c.placed == nil {
		return
	}
	n := 0
	for a := range c.placed() {
		fn(a)
		n++
	}
	log.Get().Debug("lifecycle: transition", "op", name, "count", n)
}
