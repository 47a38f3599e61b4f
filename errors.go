package emojitext

import "errors"

// Sentinel errors for the emojitext package.
var (
	// ErrUnknownStyle is returned when a style value name is not recognized.
	ErrUnknownStyle = errors.New("emojitext: unknown style value")

	// ErrNoConfiguration is returned by operations that need emoji
	// definitions when none are set.
	ErrNoConfiguration = errors.New("emojitext: no emoji configuration")

	// ErrUnknownEmoji is returned when inserting a name the configuration
	// does not define.
	ErrUnknownEmoji = errors.New("emojitext: unknown emoji")

	// ErrMaxLength is returned when an insertion would exceed the maximum
	// display length.
	ErrMaxLength = errors.New("emojitext: maximum length exceeded")
)
