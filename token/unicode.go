package token

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

// NameForUnicode maps a single Unicode emoji to a token name derived from
// its slug ("grinning-face" becomes "grinning_face").
func NameForUnicode(s string) (string, bool) {
	found := gomoji.CollectAll(s)
	if len(found) != 1 || found[0].Character != s {
		return "", false
	}
	return slugName(found[0].Slug), true
}

// ReplaceUnicode rewrites Unicode emoji in text into tokens when their slug
// name is known. Other emoji are left untouched.
func ReplaceUnicode(text string, known Known) string {
	if known == nil || !gomoji.ContainsEmoji(text) {
		return text
	}
	var b strings.Builder
	rest := text
	for _, e := range gomoji.CollectAll(text) {
		i := strings.Index(rest, e.Character)
		if i < 0 {
			continue
		}
		b.WriteString(rest[:i])
		if name := slugName(e.Slug); known(name) {
			b.WriteString(Format(name))
		} else {
			b.WriteString(e.Character)
		}
		rest = rest[i+len(e.Character):]
	}
	b.WriteString(rest)
	return b.String()
}

func slugName(slug string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, slug)
}
