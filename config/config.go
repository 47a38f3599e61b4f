package config

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultWidth and DefaultHeight are the declared size used when neither the
// definition nor the settings specify one.
const (
	DefaultWidth  = 24
	DefaultHeight = 24
)

// Size is a width/height pair in design-time pixels.
type Size struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

// Definition describes one emoji image.
type Definition struct {
	// Name is the token name, matching [A-Za-z0-9_]+.
	Name string

	// Image is the image path relative to the asset root.
	Image string

	// Width and Height are the declared (design-time) dimensions, both > 0.
	Width  int
	Height int

	// Description is free text used by Search.
	Description string
}

// Settings holds configuration-wide defaults.
type Settings struct {
	DefaultSize      Size
	MaxSize          Size
	SupportedFormats []string
}

// Configuration maps emoji names to definitions.
// A nil *Configuration is valid and resolves nothing.
type Configuration struct {
	Version    string
	emojis     map[string]Definition
	categories map[string][]string
	settings   Settings
}

// New builds a validated configuration from definitions.
// Definitions with zero Width or Height receive the default size.
func New(defs []Definition, opts ...Option) (*Configuration, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Configuration{
		Version:    o.version,
		emojis:     make(map[string]Definition, len(defs)),
		categories: o.categories,
		settings:   o.settings,
	}
	for _, d := range defs {
		if d.Width == 0 {
			d.Width = c.settings.DefaultSize.Width
		}
		if d.Height == 0 {
			d.Height = c.settings.DefaultSize.Height
		}
		if err := c.validate(d); err != nil {
			return nil, err
		}
		c.emojis[d.Name] = d
	}
	return c, nil
}

// Lookup returns the definition for name.
func (c *Configuration) Lookup(name string) (Definition, bool) {
	if c == nil {
		return Definition{}, false
	}
	d, ok := c.emojis[name]
	return d, ok
}

// Has reports whether name is defined.
func (c *Configuration) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Len returns the number of definitions.
func (c *Configuration) Len() int {
	if c == nil {
		return 0
	}
	return len(c.emojis)
}

// Names returns all emoji names in sorted order.
func (c *Configuration) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.emojis))
	for name := range c.emojis {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Definitions returns all definitions sorted by name.
func (c *Configuration) Definitions() []Definition {
	names := c.Names()
	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		defs = append(defs, c.emojis[name])
	}
	return defs
}

// Categories returns the category names in sorted order.
func (c *Configuration) Categories() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Category returns the definitions listed under category, in listed order.
// Names without a definition are skipped.
func (c *Configuration) Category(category string) []Definition {
	if c == nil {
		return nil
	}
	var defs []Definition
	for _, name := range c.categories[category] {
		if d, ok := c.emojis[name]; ok {
			defs = append(defs, d)
		}
	}
	return defs
}

// Settings returns the configuration-wide settings.
func (c *Configuration) Settings() Settings {
	if c == nil {
		return defaultSettings()
	}
	return c.settings
}

// Search returns the definitions whose name or description contains query,
// compared case-insensitively. Results are sorted by name.
func (c *Configuration) Search(query string) []Definition {
	query = strings.TrimSpace(query)
	if c == nil || query == "" {
		return nil
	}
	fold := cases.Fold()
	needle := fold.String(query)
	var found []Definition
	for _, d := range c.Definitions() {
		if strings.Contains(fold.String(d.Name), needle) ||
			strings.Contains(fold.String(d.Description), needle) {
			found = append(found, d)
		}
	}
	return found
}

// Ext returns the lower-cased extension of an image name without the dot.
// A dot in first or last position does not start an extension.
func Ext(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// Supports reports whether the image extension is an allowed format.
// An empty SupportedFormats list allows every format.
func (s Settings) Supports(image string) bool {
	if len(s.SupportedFormats) == 0 {
		return true
	}
	ext := Ext(image)
	for _, f := range s.SupportedFormats {
		if strings.EqualFold(f, ext) {
			return true
		}
	}
	return false
}

func (c *Configuration) validate(d Definition) error {
	switch {
	case !ValidName(d.Name):
		return &DefinitionError{Name: d.Name, Reason: "name must match [A-Za-z0-9_]+"}
	case d.Image == "":
		return &DefinitionError{Name: d.Name, Reason: "missing image path"}
	case d.Width <= 0 || d.Height <= 0:
		return &DefinitionError{Name: d.Name, Reason: "declared width and height must be positive"}
	case !c.settings.Supports(d.Image):
		return &DefinitionError{Name: d.Name, Reason: fmt.Sprintf("unsupported image format %q", Ext(d.Image))}
	}
	return nil
}

// ValidName reports whether name is a valid token name.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		default:
			return false
		}
	}
	return true
}

func defaultSettings() Settings {
	return Settings{
		DefaultSize: Size{Width: DefaultWidth, Height: DefaultHeight},
		MaxSize:     Size{Width: 48, Height: 48},
	}
}
