package config

// Option configures a Configuration built with New.
type Option func(*options)

type options struct {
	version    string
	categories map[string][]string
	settings   Settings
}

func defaultOptions() options {
	return options{
		version:    "1.0.0",
		categories: map[string][]string{},
		settings:   defaultSettings(),
	}
}

// WithVersion sets the configuration version string.
func WithVersion(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithCategory adds a named category listing emoji names.
func WithCategory(name string, emojis ...string) Option {
	return func(o *options) {
		o.categories[name] = append([]string(nil), emojis...)
	}
}

// WithSettings replaces the default settings.
// Zero sizes keep their defaults; a nil format list allows every format.
func WithSettings(s Settings) Option {
	return func(o *options) {
		def := defaultSettings()
		if s.DefaultSize.Width <= 0 || s.DefaultSize.Height <= 0 {
			s.DefaultSize = def.DefaultSize
		}
		if s.MaxSize.Width <= 0 || s.MaxSize.Height <= 0 {
			s.MaxSize = def.MaxSize
		}
		o.settings = s
	}
}
