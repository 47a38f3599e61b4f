// Package span builds inline image spans over token text.
//
// Every text change re-derives the whole span set: there is no incremental
// diffing. A span set is one buffer generation; the objects it holds are
// exclusively owned by it and are dropped wholesale when the next generation
// is built.
package span

import (
	"github.com/gogpu/emojitext/asset"
	"github.com/gogpu/emojitext/inline"
	"github.com/gogpu/emojitext/internal/log"
	"github.com/gogpu/emojitext/token"
)

// Span decorates the byte range [Start, End) of the rendered text, which
// holds the literal token, with an inline image.
type Span struct {
	Start, End int
	Image      *inline.Image
}

// Name returns the emoji name of the span.
func (s Span) Name() string { return s.Image.Name() }

// Segment is one piece of display output: literal text or an emoji.
type Segment struct {
	// Text is the segment text; for an emoji it is the token itself.
	Text string

	// Span is set for emoji segments, nil for literal text.
	Span *Span
}

// IsEmoji reports whether the segment is an emoji.
func (s Segment) IsEmoji() bool { return s.Span != nil }

// Builder resolves tokens and constructs their inline images.
type Builder struct {
	resolver *asset.Resolver
	factory  *inline.Factory
}

// NewBuilder creates a builder. A nil resolver disables scanning; a nil
// factory builds images without visuals.
func NewBuilder(r *asset.Resolver, f *inline.Factory) *Builder {
	if f == nil {
		f = inline.NewFactory(nil)
	}
	return &Builder{resolver: r, factory: f}
}

// Resolver returns the builder's resolver.
func (b *Builder) Resolver() *asset.Resolver { return b.resolver }

// Known reports whether name resolves.
func (b *Builder) Known(name string) bool {
	_, _, ok := b.resolver.Resolve(name)
	return ok
}

// Build scans text and returns one span per resolved token, in order.
// Unknown tokens get no span and stay literal text.
func (b *Builder) Build(text string) []Span {
	if b.resolver.Configuration() == nil {
		return nil
	}
	matches := token.Find(text)
	if len(matches) == 0 {
		return nil
	}

	pass := b.factory.Pass()
	var spans []Span
	for _, m := range matches {
		def, _, ok := b.resolver.Resolve(m.Name)
		if !ok {
			continue
		}
		spans = append(spans, Span{Start: m.Start, End: m.End, Image: pass.New(def)})
	}
	log.Get().Debug("span: built", "matches", len(matches), "spans", len(spans))
	return spans
}

// Segments scans an immutable display string and returns fresh output text
// interleaving literal runs and emoji placeholders. Unknown tokens are kept
// verbatim in literal runs, so the output text equals the input.
func (b *Builder) Segments(text string) (string, []Segment) {
	if text == "" {
		return "", nil
	}
	if b.resolver.Configuration() == nil {
		return text, []Segment{{Text: text}}
	}

	pass := b.factory.Pass()
	var out []byte
	var segs []Segment
	for _, p := range token.Split(text, b.Known) {
		start := len(out)
		out = append(out, p.Text...)
		if !p.Token {
			segs = append(segs, Segment{Text: p.Text})
			continue
		}
		def, _, _ := b.resolver.Resolve(p.Name)
		segs = append(segs, Segment{
			Text: p.Text,
			Span: &Span{Start: start, End: len(out), Image: pass.New(def)},
		})
	}
	return string(out), segs
}

// Images returns the images of spans in span order.
func Images(spans []Span) []*inline.Image {
	if len(spans) == 0 {
		return nil
	}
	images := make([]*inline.Image, len(spans))
	for i, s := range spans {
		images[i] = s.Image
	}
	return images
}

// SegmentImages returns the images of emoji segments in order.
func SegmentImages(segs []Segment) []*inline.Image {
	var images []*inline.Image
	for _, s := range segs {
		if s.Span != nil {
			images = append(images, s.Span.Image)
		}
	}
	return images
}

// Assemble splits text into segments around already built spans. Spans must
// be ordered and lie within text; out of range spans are skipped.
func Assemble(text string, spans []Span) []Segment {
	var segs []Segment
	pos := 0
	for i := range spans {
		s := &spans[i]
		if s.Start < pos || s.End > len(text) || s.Start >= s.End {
			continue
		}
		if s.Start > pos {
			segs = append(segs, Segment{Text: text[pos:s.Start]})
		}
		segs = append(segs, Segment{Text: text[s.Start:s.End], Span: s})
		pos = s.End
	}
	if pos < len(text) {
		segs = append(segs, Segment{Text: text[pos:]})
	}
	return segs
}
