// Package token scans text for inline emoji tokens.
//
// A token is a bracketed name, "[smile]", where the name is restricted to
// ASCII letters, digits and underscore. Matching is leftmost and
// non-overlapping: once a match consumes characters scanning resumes right
// after it. All offsets are byte offsets into the scanned string.
package token

import (
	"regexp"
	"strings"
)

// Pattern matches one token and captures its name.
var Pattern = regexp.MustCompile(`\[([A-Za-z0-9_]+)\]`)

// Known reports whether an emoji name has a definition.
type Known func(name string) bool

// Match is one token occurrence.
type Match struct {
	// Start and End delimit the token text, brackets included.
	Start, End int

	// Name is the captured name.
	Name string
}

// Len returns the token length in bytes.
func (m Match) Len() int { return m.End - m.Start }

// Format returns the token text for name.
func Format(name string) string {
	return "[" + name + "]"
}

// Find returns every token in text in order.
func Find(text string) []Match {
	idx := Pattern.FindAllStringSubmatchIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	matches := make([]Match, len(idx))
	for i, loc := range idx {
		matches[i] = Match{Start: loc[0], End: loc[1], Name: text[loc[2]:loc[3]]}
	}
	return matches
}

// Names returns the names of every token in text, duplicates included.
func Names(text string) []string {
	matches := Find(text)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return names
}

// Count returns the number of tokens in text.
func Count(text string) int {
	return len(Pattern.FindAllStringIndex(text, -1))
}

// PlainText strips every token from text, whether or not its name resolves.
func PlainText(text string) string {
	return Pattern.ReplaceAllLiteralString(text, "")
}

// Piece is a run of text that is either literal or a single token.
type Piece struct {
	Text  string
	Start int
	Token bool
	Name  string
}

// Split cuts text into alternating literal runs and tokens covering the
// whole string. Empty literal runs are omitted. Tokens whose name is not
// known are reported as literal text; a nil known treats every name as known.
// Adjacent literal runs are merged.
func Split(text string, known Known) []Piece {
	var pieces []Piece
	appendLiteral := func(start, end int) {
		if start == end {
			return
		}
		if n := len(pieces); n > 0 && !pieces[n-1].Token {
			pieces[n-1].Text = text[pieces[n-1].Start:end]
			return
		}
		pieces = append(pieces, Piece{Text: text[start:end], Start: start})
	}

	last := 0
	for _, m := range Find(text) {
		appendLiteral(last, m.Start)
		if known == nil || known(m.Name) {
			pieces = append(pieces, Piece{Text: text[m.Start:m.End], Start: m.Start, Token: true, Name: m.Name})
		} else {
			appendLiteral(m.Start, m.End)
		}
		last = m.End
	}
	appendLiteral(last, len(text))
	return pieces
}

// Join concatenates piece texts.
func Join(pieces []Piece) string {
	var b strings.Builder
	for _, p := range pieces {
		b.WriteString(p.Text)
	}
	return b.String()
}

// Replace substitutes tokens found in replacements with their value.
// Tokens without a replacement are kept.
func Replace(text string, replacements map[string]string) string {
	return Pattern.ReplaceAllStringFunc(text, func(tok string) string {
		if r, ok := replacements[tok[1:len(tok)-1]]; ok {
			return r
		}
		return tok
	})
}

// CleanInvalid removes the brackets around unknown tokens, keeping the name.
func CleanInvalid(text string, known Known) string {
	return Pattern.ReplaceAllStringFunc(text, func(tok string) string {
		name := tok[1 : len(tok)-1]
		if known != nil && known(name) {
			return tok
		}
		return name
	})
}

// ValidFormat reports whether brackets in text are balanced and no
// bracketed content contains another bracket.
func ValidFormat(text string) bool {
	if strings.Count(text, "[") != strings.Count(text, "]") {
		return false
	}
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
			if depth > 1 {
				return false
			}
		case ']':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
