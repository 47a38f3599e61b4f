package config

import (
	"testing"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "version": "1.0.0",
  "emojis": {
    "smile": {"name": "smile", "image": "smile.gif", "width": 24, "height": 24, "description": "Smiling face"},
    "wide": {"name": "wide", "image": "wide.png", "width": 48, "height": 24, "description": "A wide banner"},
    "plain": {"name": "plain", "image": "plain.png", "description": "No size given"}
  },
  "categories": {"faces": ["smile", "missing"], "misc": ["wide"]},
  "settings": {
    "defaultSize": {"width": 32, "height": 32},
    "maxSize": {"width": 64, "height": 64},
    "supportedFormats": ["gif", "png"]
  }
}`

const sampleTOML = `
version = "1.0.0"

[emojis.smile]
name = "smile"
image = "smile.gif"
width = 24
height = 24
description = "Smiling face"

[emojis.wide]
name = "wide"
image = "wide.png"
width = 48
height = 24
description = "A wide banner"

[emojis.plain]
name = "plain"
image = "plain.png"
description = "No size given"

[categories]
faces = ["smile", "missing"]
misc = ["wide"]

[settings]
supportedFormats = ["gif", "png"]

[settings.defaultSize]
width = 32
height = 32

[settings.maxSize]
width = 64
height = 64
`

func TestParseJSON(t *testing.T) {
	c, err := ParseJSON([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", c.Version)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"plain", "smile", "wide"}, c.Names())

	smile, ok := c.Lookup("smile")
	require.True(t, ok)
	assert.Equal(t, Definition{Name: "smile", Image: "smile.gif", Width: 24, Height: 24, Description: "Smiling face"}, smile)

	plain, ok := c.Lookup("plain")
	require.True(t, ok)
	assert.Equal(t, 32, plain.Width, "missing width falls back to defaultSize")
	assert.Equal(t, 32, plain.Height)

	assert.Equal(t, Size{Width: 64, Height: 64}, c.Settings().MaxSize)
}

func TestParseTOMLMatchesJSON(t *testing.T) {
	fromJSON, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	fromTOML, err := Parse([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, fromJSON.Definitions(), fromTOML.Definitions())
	assert.Equal(t, fromJSON.Categories(), fromTOML.Categories())
	assert.Equal(t, fromJSON.Settings(), fromTOML.Settings())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantDef string
		check   func(t *testing.T, err error)
	}{
		{
			name: "malformed",
			data: `{"emojis": {`,
			check: func(t *testing.T, err error) {
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, FormatJSON, pe.Format)
			},
		},
		{
			name: "empty",
			data: "   ",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyData)
			},
		},
		{
			name: "no emojis",
			data: `{"version": "1"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoEmojis)
			},
		},
		{name: "zero width", data: `{"emojis": {"a": {"image": "a.png", "width": 0, "height": 10}}}`, wantDef: "a"},
		{name: "negative height", data: `{"emojis": {"b": {"image": "b.png", "width": 10, "height": -1}}}`, wantDef: "b"},
		{name: "bad name", data: `{"emojis": {"bad-name": {"image": "x.png"}}}`, wantDef: "bad-name"},
		{name: "no image", data: `{"emojis": {"c": {"width": 10, "height": 10}}}`, wantDef: "c"},
		{
			name:    "unsupported format",
			data:    `{"emojis": {"d": {"image": "d.bmp"}}, "settings": {"supportedFormats": ["png"]}}`,
			wantDef: "d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseJSON([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, c)
			if tt.wantDef != "" {
				var de *DefinitionError
				require.ErrorAs(t, err, &de)
				assert.Equal(t, tt.wantDef, de.Name)
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestParseErrorCause(t *testing.T) {
	_, err := Parse([]byte("= broken"), FormatTOML)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, pe.Err, errors.Cause(err))
}

func TestCategory(t *testing.T) {
	c, err := ParseJSON([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"faces", "misc"}, c.Categories())

	faces := c.Category("faces")
	require.Len(t, faces, 1, "unknown names are skipped")
	assert.Equal(t, "smile", faces[0].Name)
	assert.Empty(t, c.Category("nope"))
}

func TestSearch(t *testing.T) {
	c, err := ParseJSON([]byte(sampleJSON))
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []string
	}{
		{"SMILE", []string{"smile"}},
		{"  banner ", []string{"wide"}},
		{"i", []string{"plain", "smile", "wide"}},
		{"", nil},
		{"zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []string
			for _, d := range c.Search(tt.query) {
				got = append(got, d.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNilConfiguration(t *testing.T) {
	var c *Configuration
	_, ok := c.Lookup("smile")
	assert.False(t, ok)
	assert.False(t, c.Has("smile"))
	assert.Zero(t, c.Len())
	assert.Nil(t, c.Names())
	assert.Nil(t, c.Search("smile"))
	assert.Equal(t, DefaultWidth, c.Settings().DefaultSize.Width)
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"emoji.json": {Data: []byte(sampleJSON)},
		"emoji.toml": {Data: []byte(sampleTOML)},
		"emoji.yaml": {Data: []byte("x: 1")},
	}

	c, err := Load(fsys, "emoji.json")
	require.NoError(t, err)
	assert.True(t, c.Has("wide"))

	c, err = Load(fsys, "emoji.toml")
	require.NoError(t, err)
	assert.True(t, c.Has("wide"))

	_, err = Load(fsys, "emoji.yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(fsys, "missing.json")
	assert.Error(t, err)
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"smile", true},
		{"thumbs_up", true},
		{"A1_b2", true},
		{"", false},
		{"with space", false},
		{"dash-ed", false},
		{"émoji", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.name))
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"heart", "laugh", "smile", "thumbs_up"}, c.Names())
	assert.Len(t, c.Category("faces"), 2)
	assert.True(t, c.Settings().Supports("x.WEBP"))
	assert.False(t, c.Settings().Supports("x.bmp"))
}

func TestExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "smile.GIF", want: "gif"},
		{name: "dir.v2/smile.png", want: "png"},
		{name: ".gif", want: ""},
		{name: "smile.", want: ""},
		{name: "smile", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ext(tt.name))
		})
	}

	s := Default().Settings()
	assert.False(t, s.Supports(".gif"), "a leading dot is not an extension")
	assert.False(t, s.Supports("smile."))

	_, err := New([]Definition{{Name: "dot", Image: ".gif", Width: 24, Height: 24}},
		WithSettings(s))
	var de *DefinitionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "dot", de.Name)
}
