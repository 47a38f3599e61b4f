package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/emojitext/asset"
	"github.com/gogpu/emojitext/config"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().String("category", "", "Only list emojis of this category")
	_ = viper.BindPFlag("category", listCmd.Flags().Lookup("category"))
}

var (
	nameColor  = color.New(color.FgGreen, color.Bold)
	imageColor = color.New(color.FgCyan)
	kindColor  = color.New(color.FgMagenta)
)

var listCmd = &cobra.Command{
	Use:   "list [QUERY]",
	Short: "List configured emojis, optionally matching QUERY",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfiguration()
		if err != nil {
			return err
		}

		var defs []config.Definition
		switch {
		case viper.GetString("category") != "":
			defs = c.Category(viper.GetString("category"))
		case len(args) == 1:
			defs = c.Search(args[0])
		default:
			defs = c.Definitions()
		}

		w := cmd.OutOrStdout()
		for _, d := range defs {
			fmt.Fprintf(w, "%s %s %dx%d %s",
				nameColor.Sprintf("[%s]", d.Name),
				imageColor.Sprint(d.Image),
				d.Width, d.Height,
				kindColor.Sprint(asset.Classify(d.Image)))
			if d.Description != "" {
				fmt.Fprintf(w, "  %s", d.Description)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%d of %d emojis\n", len(defs), c.Len())
		return nil
	},
}
