package main

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/emojitext"
	"github.com/gogpu/emojitext/render"
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "emoji.png", "Output PNG file")
	_ = viper.BindPFlag("output", renderCmd.Flags().Lookup("output"))

	renderCmd.Flags().Float64P("size", "s", 24, "Font size in points")
	_ = viper.BindPFlag("size", renderCmd.Flags().Lookup("size"))

	renderCmd.Flags().String("fg", "#000000", "Text color")
	_ = viper.BindPFlag("fg", renderCmd.Flags().Lookup("fg"))

	renderCmd.Flags().String("bg", "#ffffff", "Background color, empty for transparent")
	_ = viper.BindPFlag("bg", renderCmd.Flags().Lookup("bg"))

	renderCmd.Flags().Int("padding", 4, "Padding around the text in pixels")
	_ = viper.BindPFlag("padding", renderCmd.Flags().Lookup("padding"))
}

var renderCmd = &cobra.Command{
	Use:   "render TEXT...",
	Short: "Render token text to a PNG image",
	Long: `Render token text to a PNG image. Animated emoji are drawn with
their first frame; unknown tokens are drawn as literal text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfiguration()
		if err != nil {
			return err
		}
		fg, err := parseHex(viper.GetString("fg"))
		if err != nil {
			return err
		}
		var bg color.Color
		if s := viper.GetString("bg"); s != "" {
			if bg, err = parseHex(s); err != nil {
				return err
			}
		}

		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return errors.Wrap(err, "parse font")
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: viper.GetFloat64("size"), DPI: 72})
		if err != nil {
			return errors.Wrap(err, "create face")
		}
		defer face.Close()

		label := emojitext.NewLabel(
			emojitext.WithAssets(os.DirFS(viper.GetString("assets"))),
			emojitext.WithConfiguration(c),
		)
		defer label.Close()
		label.SetText(joinArgs(args))

		img, err := render.Render(label.Segments(), face, fg, bg, viper.GetInt("padding"))
		if err != nil {
			return err
		}

		out := viper.GetString("output")
		w, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		if err := png.Encode(w, img); err != nil {
			_ = w.Close()
			return errors.Wrap(err, "encode png")
		}
		if err := w.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%dx%d, %d emoji)\n",
			out, img.Bounds().Dx(), img.Bounds().Dy(), len(label.Images()))
		return nil
	},
}

// parseHex parses #rgb, #rrggbb or #rrggbbaa.
func parseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, errors.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
