package inline

import (
	"image"
	"time"
)

// State is the playback state of an animated image.
type State int

const (
	// Stopped is the initial state: first frame shown, no timer running.
	Stopped State = iota
	// Playing advances frames on a timer.
	Playing
	// Paused keeps the current frame, no timer running.
	Paused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// player drives frame advance for one animation.
//
// Frame timers run on their own goroutines and only Post a tick to the
// dispatcher. The generation counter invalidates ticks already queued when
// playback is stopped or paused. Without a dispatcher the player tracks
// state only and frames advance through advance.
type player struct {
	anim       *animation
	state      State
	index      int
	gen        uint64
	timer      *time.Timer
	dispatcher Dispatcher
	onFrame    func()
}

func newPlayer(anim *animation, d Dispatcher, onFrame func()) *player {
	return &player{anim: anim, dispatcher: d, onFrame: onFrame}
}

// start moves to Playing from any other state.
func (p *player) start() {
	if p.state == Playing {
		return
	}
	p.state = Playing
	p.schedule()
}

// stop moves to Stopped and rewinds to the first frame.
func (p *player) stop() {
	if p.state == Stopped {
		return
	}
	p.cancel()
	p.state = Stopped
	if p.index != 0 {
		p.index = 0
		p.notify()
	}
}

// pause moves Playing to Paused. Other states are unchanged.
func (p *player) pause() {
	if p.state != Playing {
		return
	}
	p.cancel()
	p.state = Paused
}

// resume continues playback from Paused or Stopped.
func (p *player) resume() {
	p.start()
}

// advance shows the next frame, wrapping around.
func (p *player) advance() {
	p.index = (p.index + 1) % len(p.anim.frames)
	p.notify()
}

func (p *player) frame() image.Image {
	return p.anim.frames[p.index]
}

func (p *player) schedule() {
	if p.dispatcher == nil || len(p.anim.frames) < 2 {
		return
	}
	gen := p.gen
	p.timer = time.AfterFunc(p.anim.delays[p.index], func() {
		p.dispatcher.Post(func() { p.tick(gen) })
	})
}

func (p *player) tick(gen uint64) {
	if gen != p.gen || p.state != Playing {
		return
	}
	p.advance()
	p.schedule()
}

func (p *player) cancel() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *player) notify() {
	if p.onFrame != nil {
		p.onFrame()
	}
}
