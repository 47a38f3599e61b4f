package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the config package.
var (
	// ErrEmptyData is returned when configuration data is empty.
	ErrEmptyData = errors.New("config: empty configuration data")

	// ErrNoEmojis is returned when the configuration has no emojis table.
	ErrNoEmojis = errors.New("config: missing emojis table")

	// ErrUnknownFormat is returned for an unrecognized configuration format.
	ErrUnknownFormat = errors.New("config: unknown configuration format")
)

// ParseError reports malformed configuration input.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: malformed %s configuration: %v", e.Format, e.Err)
}

// Unwrap returns the decoder error.
func (e *ParseError) Unwrap() error { return e.Err }

// Cause returns the decoder error for github.com/pkg/errors.Cause.
func (e *ParseError) Cause() error { return e.Err }

// DefinitionError reports an emoji definition rejected at load time.
type DefinitionError struct {
	Name   string
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("config: invalid definition %q: %s", e.Name, e.Reason)
}
