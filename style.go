package emojitext

import (
	"fmt"
	"image/color"
	"strings"
)

// FontWeight selects the text face variant.
type FontWeight int

const (
	// WeightNormal is the regular face (default).
	WeightNormal FontWeight = iota
	// WeightBold is the bold face.
	WeightBold
	// WeightItalic is the italic face.
	WeightItalic
)

var fontWeightNames = [...]string{"normal", "bold", "italic"}

// String returns the style name of the weight.
func (w FontWeight) String() string {
	if int(w) < len(fontWeightNames) && w >= 0 {
		return fontWeightNames[w]
	}
	return unknownStr
}

// ParseFontWeight parses "normal", "bold" or "italic".
func ParseFontWeight(s string) (FontWeight, error) {
	i, err := parseName(s, fontWeightNames[:])
	return FontWeight(i), err
}

// EllipsizeMode selects where overflowing text is cut.
type EllipsizeMode int

const (
	// EllipsizeNone never ellipsizes (default).
	EllipsizeNone EllipsizeMode = iota
	EllipsizeHead
	EllipsizeMiddle
	EllipsizeTail
	EllipsizeClip
)

var ellipsizeNames = [...]string{"none", "head", "middle", "tail", "clip"}

func (m EllipsizeMode) String() string {
	if int(m) < len(ellipsizeNames) && m >= 0 {
		return ellipsizeNames[m]
	}
	return unknownStr
}

// ParseEllipsizeMode parses "none", "head", "middle", "tail" or "clip".
func ParseEllipsizeMode(s string) (EllipsizeMode, error) {
	i, err := parseName(s, ellipsizeNames[:])
	return EllipsizeMode(i), err
}

// TextAlign is the horizontal alignment of display text.
type TextAlign int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

var alignNames = [...]string{"left", "center", "right"}

func (a TextAlign) String() string {
	if int(a) < len(alignNames) && a >= 0 {
		return alignNames[a]
	}
	return unknownStr
}

// ParseTextAlign parses "left", "center" or "right".
func ParseTextAlign(s string) (TextAlign, error) {
	i, err := parseName(s, alignNames[:])
	return TextAlign(i), err
}

const unknownStr = "unknown"

func parseName(s string, names []string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, nil
	}
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Style holds cosmetic settings passed through to the host view.
// Only MaxLength and Multiline change behavior: MaxLength caps the display
// length of an Input and Multiline disables Submitted events.
type Style struct {
	Placeholder   string
	MaxLength     int
	Multiline     bool
	FontSize      float64
	FontWeight    FontWeight
	TextColor     color.Color
	CursorColor   color.Color
	NumberOfLines int
	EllipsizeMode EllipsizeMode
	TextAlign     TextAlign
}

// DefaultStyle returns the style used when none is given.
func DefaultStyle() Style {
	return Style{
		Multiline:   true,
		FontSize:    16,
		TextColor:   color.Black,
		CursorColor: color.Black,
	}
}
