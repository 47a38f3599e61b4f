package token

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DisplayLength returns the number of visible units in text: a known token
// counts as one, literal text counts one per grapheme cluster, so a
// multi-rune Unicode emoji also counts as one.
func DisplayLength(text string, known Known) int {
	n := 0
	for _, p := range Split(text, known) {
		if p.Token {
			n++
			continue
		}
		n += uniseg.GraphemeClusterCount(p.Text)
	}
	return n
}

// Truncate cuts text to at most max display units. Known tokens are never
// split; a token that does not fit is dropped along with everything after it.
func Truncate(text string, max int, known Known) string {
	if max <= 0 {
		return ""
	}
	var b strings.Builder
	n := 0
	for _, p := range Split(text, known) {
		if n >= max {
			break
		}
		if p.Token {
			b.WriteString(p.Text)
			n++
			continue
		}
		g := uniseg.NewGraphemes(p.Text)
		for n < max && g.Next() {
			b.WriteString(g.Str())
			n++
		}
	}
	return b.String()
}
