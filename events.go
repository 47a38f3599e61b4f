package emojitext

// TextChanged is published after every text change.
type TextChanged struct {
	Text      string
	PlainText string
}

// TokenInserted is published after InsertToken, following the TextChanged
// of the insertion.
type TokenInserted struct {
	Name string
	Text string
}

// Submitted is published by Commit in single-line mode.
type Submitted struct {
	Text      string
	PlainText string
}

// FocusGained is published when the input gains focus.
type FocusGained struct{}

// FocusLost is published when the input loses focus.
type FocusLost struct{}
