// Package asset resolves emoji names to bundled image resources.
//
// Images are addressed by a fixed asset-root-relative path, "emoji/<image>",
// and classified as animated or static by file extension. There is no
// network or lazy fetch.
package asset

import (
	"io/fs"
	"path"

	"github.com/gogpu/emojitext/config"
)

// Root is the directory, relative to the asset source, holding emoji images.
const Root = "emoji"

// Kind classifies an image resource.
type Kind int

const (
	// Static is a single-frame image.
	Static Kind = iota
	// Animated is a multi-frame image (GIF or WebP).
	Animated
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Static:
		return "Static"
	case Animated:
		return "Animated"
	default:
		return "Unknown"
	}
}

// Ext returns the lower-cased extension of name, as config.Ext.
func Ext(name string) string { return config.Ext(name) }

// Classify returns Animated for gif and webp images and Static otherwise.
func Classify(image string) Kind {
	switch Ext(image) {
	case "gif", "webp":
		return Animated
	default:
		return Static
	}
}

// Path returns the asset path of an image.
func Path(image string) string {
	return path.Join(Root, image)
}

// Source reads bundled asset bytes.
type Source interface {
	ReadAsset(name string) ([]byte, error)
}

// FSSource reads assets from a file system, such as an embed.FS or os.DirFS.
type FSSource struct {
	FS fs.FS
}

// ReadAsset implements Source.
func (s FSSource) ReadAsset(name string) ([]byte, error) {
	return fs.ReadFile(s.FS, name)
}

// Resolver maps emoji names to definitions.
// The zero value and a Resolver over a nil configuration resolve nothing.
type Resolver struct {
	config *config.Configuration
}

// NewResolver creates a resolver over c. c may be nil.
func NewResolver(c *config.Configuration) *Resolver {
	return &Resolver{config: c}
}

// Configuration returns the backing configuration.
func (r *Resolver) Configuration() *config.Configuration {
	if r == nil {
		return nil
	}
	return r.config
}

// Resolve returns the definition for name and its kind.
// A missing definition is not an error; ok is false.
func (r *Resolver) Resolve(name string) (def config.Definition, kind Kind, ok bool) {
	if r == nil {
		return config.Definition{}, Static, false
	}
	def, ok = r.config.Lookup(name)
	if !ok {
		return config.Definition{}, Static, false
	}
	return def, Classify(def.Image), true
}
