// Package render lays out and rasterizes token text with inline images.
//
// Text runs are drawn with an x/image font.Face; emoji segments are drawn
// through their inline.Image, which recomputes its placement from the line
// metrics on every draw. Each line's height is the envelope of the font
// metrics and every image placed on it.
//
// Usage:
//
//	_, segs := builder.Segments("hi [smile]")
//	l := render.LayoutSegments(segs, face)
//	dst := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
//	render.Draw(render.NewCanvas(dst, face, color.Black), l, 0, 0)
package render
