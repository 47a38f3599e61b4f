// Package emojitext renders text containing emoji tokens such as "[smile]"
// with inline static or animated images.
//
// # Overview
//
// A token is a name of letters, digits or underscores in square brackets.
// Tokens naming an emoji of the active configuration become inline images;
// every other token stays literal text. Images are sized to 90% of the line
// height, vertically centered against the font metrics, and widen the line
// box when they do not fit.
//
// # Quick Start
//
//	loop := inline.NewLoop()
//	in := emojitext.NewInput(
//	    emojitext.WithAssets(os.DirFS("assets")),
//	    emojitext.WithConfiguration(config.Default()),
//	    emojitext.WithDispatcher(loop),
//	)
//	defer in.Close()
//
//	in.Attach()
//	in.SetText("hi [smile]")
//	_ = in.Draw(render.NewCanvas(dst, face, color.Black), 0, 0)
//
// # Views
//
// Input edits a TextBuffer. Every change discards all spans and rescans the
// whole text; events are delivered through Subscribe. Label shows an
// immutable string.
//
// # Lifecycle
//
// Both views forward host events to their animations: Attach starts them,
// Detach stops and rewinds them, SetVisible pauses and resumes them.
// Animations advance on timers that post to the dispatcher, so frames only
// change on the goroutine draining it.
//
// # Architecture
//
//   - config: emoji definitions (JSON, TOML)
//   - asset: name resolution and asset reading
//   - token: token scanning and plain text
//   - inline: image decoding and animation playback
//   - layout: line metric arithmetic
//   - span: span building per scan pass
//   - lifecycle: host state to playback transitions
//   - render: text and image drawing
//   - buffer: in-memory decorated text buffer
//
// # Logging
//
// emojitext is silent by default. See SetLogger.
package emojitext
