package config

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Format identifies a configuration encoding.
type Format int

const (
	// FormatJSON is the emoji-config.json layout.
	FormatJSON Format = iota
	// FormatTOML is the TOML encoding.
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".toml", ".tml":
		return FormatTOML, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "file %q", name)
}

type rawSize struct {
	Width  *int `json:"width" toml:"width"`
	Height *int `json:"height" toml:"height"`
}

type rawDefinition struct {
	Name        string `json:"name" toml:"name"`
	Image       string `json:"image" toml:"image"`
	Width       *int   `json:"width" toml:"width"`
	Height      *int   `json:"height" toml:"height"`
	Description string `json:"description" toml:"description"`
}

type rawSettings struct {
	DefaultSize      *rawSize `json:"defaultSize" toml:"defaultSize"`
	MaxSize          *rawSize `json:"maxSize" toml:"maxSize"`
	SupportedFormats []string `json:"supportedFormats" toml:"supportedFormats"`
}

type rawConfiguration struct {
	Version    string                   `json:"version" toml:"version"`
	Emojis     map[string]rawDefinition `json:"emojis" toml:"emojis"`
	Categories map[string][]string      `json:"categories" toml:"categories"`
	Settings   *rawSettings             `json:"settings" toml:"settings"`
}

// Parse decodes and validates a configuration.
//
// Malformed input yields a *ParseError. Definitions with an invalid name,
// a non-positive declared size or an unsupported format yield a
// *DefinitionError. Missing width or height fall back to settings.defaultSize.
func Parse(data []byte, format Format) (*Configuration, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var raw rawConfiguration
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %d", int(format))
	}
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}
	if raw.Emojis == nil {
		return nil, ErrNoEmojis
	}

	opts := []Option{WithSettings(raw.Settings.settings())}
	if raw.Version != "" {
		opts = append(opts, WithVersion(raw.Version))
	}
	for name, emojis := range raw.Categories {
		opts = append(opts, WithCategory(name, emojis...))
	}

	def := raw.Settings.settings().DefaultSize
	if def.Width <= 0 || def.Height <= 0 {
		def = defaultSettings().DefaultSize
	}

	keys := make([]string, 0, len(raw.Emojis))
	for key := range raw.Emojis {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	defs := make([]Definition, 0, len(keys))
	for _, key := range keys {
		r := raw.Emojis[key]
		d := Definition{
			Name:        key,
			Image:       r.Image,
			Width:       def.Width,
			Height:      def.Height,
			Description: r.Description,
		}
		if r.Width != nil {
			if *r.Width <= 0 {
				return nil, &DefinitionError{Name: key, Reason: "declared width must be positive"}
			}
			d.Width = *r.Width
		}
		if r.Height != nil {
			if *r.Height <= 0 {
				return nil, &DefinitionError{Name: key, Reason: "declared height must be positive"}
			}
			d.Height = *r.Height
		}
		defs = append(defs, d)
	}

	c, err := New(defs, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ParseJSON is shorthand for Parse(data, FormatJSON).
func ParseJSON(data []byte) (*Configuration, error) {
	return Parse(data, FormatJSON)
}

// Load reads and parses a configuration file from fsys.
// The format is chosen by the file extension.
func Load(fsys fs.FS, name string) (*Configuration, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", name)
	}
	return Parse(data, format)
}

// LoadFile reads and parses a configuration file from the OS filesystem.
func LoadFile(name string) (*Configuration, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", name)
	}
	return Parse(data, format)
}

func (r *rawSettings) settings() Settings {
	s := defaultSettings()
	if r == nil {
		return s
	}
	if sz, ok := r.DefaultSize.size(); ok {
		s.DefaultSize = sz
	}
	if sz, ok := r.MaxSize.size(); ok {
		s.MaxSize = sz
	}
	s.SupportedFormats = r.SupportedFormats
	return s
}

func (r *rawSize) size() (Size, bool) {
	if r == nil || r.Width == nil || r.Height == nil {
		return Size{}, false
	}
	if *r.Width <= 0 || *r.Height <= 0 {
		return Size{}, false
	}
	return Size{Width: *r.Width, Height: *r.Height}, true
}
