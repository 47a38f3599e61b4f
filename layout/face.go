package layout

import (
	"math"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
)

// FromFace returns the integer metrics of an x/image font face.
// Ascent and descent are rounded up to whole pixels.
func FromFace(face font.Face) Metrics {
	m := face.Metrics()
	return Metrics{
		Ascent:  -m.Ascent.Ceil(),
		Descent: m.Descent.Ceil(),
	}
}

// FromGoText returns the integer metrics of a go-text face at size pixels
// per em. ok is false when the font has no horizontal extents.
func FromGoText(face *gotext.Face, size float64) (m Metrics, ok bool) {
	if face == nil || face.Font == nil {
		return Metrics{}, false
	}
	ext, ok := face.FontHExtents()
	if !ok {
		return Metrics{}, false
	}
	upem := float64(face.Upem())
	if upem == 0 {
		return Metrics{}, false
	}
	scale := size / upem
	return Metrics{
		Ascent:  -int(math.Ceil(float64(ext.Ascender) * scale)),
		Descent: int(math.Ceil(-float64(ext.Descender) * scale)),
	}, true
}
