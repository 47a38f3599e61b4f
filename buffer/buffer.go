// Package buffer implements a mutable text buffer with selection, change
// notification and range decorations.
//
// It is the in-memory stand-in for a host widget's editable text: offsets are
// byte offsets and must fall on rune boundaries. A decoration is an opaque
// value attached over an immutable range; a mutation that touches the range
// removes it, a mutation before it shifts it.
package buffer

import (
	"errors"
	"slices"
	"unicode/utf8"
)

// ErrRange is returned for offsets outside the text or inside a rune.
var ErrRange = errors.New("buffer: offset out of range")

// Change describes one mutation: bytes [Start, OldEnd) became [Start, NewEnd).
type Change struct {
	Start, OldEnd, NewEnd int
}

// Delta returns the length difference introduced by the change.
func (c Change) Delta() int { return c.NewEnd - c.OldEnd }

// Decoration is a value attached over [Start, End).
type Decoration struct {
	Start, End int
	Value      any
}

// Buffer is a mutable text buffer. It is not safe for concurrent use.
type Buffer struct {
	text        string
	selStart    int
	selEnd      int
	decorations []*Decoration
	listeners   []*listener
}

type listener struct {
	fn func(Change)
}

// New creates a buffer holding text with the caret at its end.
func New(text string) *Buffer {
	return &Buffer{text: text, selStart: len(text), selEnd: len(text)}
}

// Text returns the buffer contents.
func (b *Buffer) Text() string { return b.text }

// Len returns the length in bytes.
func (b *Buffer) Len() int { return len(b.text) }

// SetText replaces the whole contents.
func (b *Buffer) SetText(text string) {
	_ = b.Replace(0, len(b.text), text)
}

// Replace substitutes s for bytes [start, end), moves the caret to the end of
// s and notifies listeners after the mutation.
func (b *Buffer) Replace(start, end int, s string) error {
	if start > end {
		start, end = end, start
	}
	if !b.valid(start) || !b.valid(end) {
		return ErrRange
	}
	b.text = b.text[:start] + s + b.text[end:]
	c := Change{Start: start, OldEnd: end, NewEnd: start + len(s)}

	kept := b.decorations[:0]
	for _, d := range b.decorations {
		switch {
		case d.End <= start:
			kept = append(kept, d)
		case d.Start >= end:
			d.Start += c.Delta()
			d.End += c.Delta()
			kept = append(kept, d)
		}
	}
	clear(b.decorations[len(kept):])
	b.decorations = kept

	b.selStart, b.selEnd = c.NewEnd, c.NewEnd
	for _, l := range slices.Clone(b.listeners) {
		l.fn(c)
	}
	return nil
}

// Selection returns the selection range. Start may be greater than End.
func (b *Buffer) Selection() (start, end int) {
	return b.selStart, b.selEnd
}

// Select sets the selection. Equal offsets place the caret.
func (b *Buffer) Select(start, end int) error {
	if !b.valid(start) || !b.valid(end) {
		return ErrRange
	}
	b.selStart, b.selEnd = start, end
	return nil
}

// OnChange registers fn to run after every mutation and returns a function
// removing it.
func (b *Buffer) OnChange(fn func(Change)) (remove func()) {
	l := &listener{fn: fn}
	b.listeners = append(b.listeners, l)
	return func() {
		b.listeners = slices.DeleteFunc(b.listeners, func(x *listener) bool { return x == l })
	}
}

// Attach decorates [start, end) with v.
func (b *Buffer) Attach(start, end int, v any) (*Decoration, error) {
	if start > end || !b.valid(start) || !b.valid(end) {
		return nil, ErrRange
	}
	d := &Decoration{Start: start, End: end, Value: v}
	i, _ := slices.BinarySearchFunc(b.decorations, d, func(a, t *Decoration) int {
		if a.Start <= t.Start {
			return -1
		}
		return 1
	})
	b.decorations = slices.Insert(b.decorations, i, d)
	return d, nil
}

// Decorations returns the decorations overlapping [start, end), ordered by
// start offset then attach order. An empty range matches decorations that
// contain it.
func (b *Buffer) Decorations(start, end int) []*Decoration {
	var out []*Decoration
	for _, d := range b.decorations {
		if (d.Start < end && d.End > start) || (start == end && d.Start <= start && start < d.End) {
			out = append(out, d)
		}
	}
	return out
}

// All returns every decoration in order.
func (b *Buffer) All() []*Decoration {
	return slices.Clone(b.decorations)
}

// Detach removes d and reports whether it was attached.
func (b *Buffer) Detach(d *Decoration) bool {
	n := len(b.decorations)
	b.decorations = slices.DeleteFunc(b.decorations, func(x *Decoration) bool { return x == d })
	return len(b.decorations) != n
}

// DetachAll removes every decoration for which match returns true, or all
// decorations when match is nil. It returns the number removed.
func (b *Buffer) DetachAll(match func(*Decoration) bool) int {
	n := len(b.decorations)
	if match == nil {
		b.decorations = nil
		return n
	}
	b.decorations = slices.DeleteFunc(b.decorations, match)
	return n - len(b.decorations)
}

func (b *Buffer) valid(i int) bool {
	if i < 0 || i > len(b.text) {
		return false
	}
	return i == len(b.text) || utf8.RuneStart(b.text[i])
}
