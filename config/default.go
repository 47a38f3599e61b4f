package config

// Default returns the built-in configuration with four animated emojis.
func Default() *Configuration {
	defs := []Definition{
		{Name: "smile", Image: "smile.gif", Width: 24, Height: 24, Description: "Smiling face"},
		{Name: "laugh", Image: "laugh.gif", Width: 24, Height: 24, Description: "Laughing face"},
		{Name: "heart", Image: "heart.gif", Width: 24, Height: 24, Description: "Red heart"},
		{Name: "thumbs_up", Image: "thumbs_up.gif", Width: 24, Height: 24, Description: "Thumbs up"},
	}
	c, err := New(defs,
		WithCategory("faces", "smile", "laugh"),
		WithCategory("gestures", "thumbs_up"),
		WithCategory("objects", "heart"),
		WithSettings(Settings{
			DefaultSize:      Size{Width: 24, Height: 24},
			MaxSize:          Size{Width: 48, Height: 48},
			SupportedFormats: []string{"gif", "png", "jpg", "webp"},
		}),
	)
	if err != nil {
		panic(err)
	}
	return c
}
