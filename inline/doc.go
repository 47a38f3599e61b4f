// Package inline implements the inline image objects placed over emoji tokens.
//
// An Image wraps a decoded resource: a single static frame or a sequence of
// animated frames. Construction follows a strict decode order:
//
//  1. Animated images (by extension) are decoded synchronously as an
//     animation. On failure decoding falls through.
//  2. The bytes are decoded as a static image. With an asynchronous Factory
//     this happens on a Worker and the result is delivered through the
//     owner's Dispatcher; until then the Image is usable but not loaded.
//  3. If both fail the Image is loaded with no visual and renders as blank
//     space of its measured size.
//
// Decode failures are logged and never returned.
//
// # Threading
//
// Every Image belongs to a single owner thread, the one driving the
// Dispatcher (normally a Loop). Background goroutines, static decodes and
// animation timers, only ever Post closures to the Dispatcher; they never
// touch Image state directly. No Image method is safe for concurrent use.
package inline
