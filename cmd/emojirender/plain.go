package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/emojitext/token"
)

func init() {
	rootCmd.AddCommand(plainCmd)

	plainCmd.Flags().Bool("clean", false, "Unwrap tokens naming no configured emoji and keep the rest")
	_ = viper.BindPFlag("clean", plainCmd.Flags().Lookup("clean"))

	plainCmd.Flags().Bool("unicode", false, "Convert Unicode emoji to tokens first")
	_ = viper.BindPFlag("unicode", plainCmd.Flags().Lookup("unicode"))
}

var plainCmd = &cobra.Command{
	Use:   "plain TEXT...",
	Short: "Print token text with tokens removed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfiguration()
		if err != nil {
			return err
		}
		text := joinArgs(args)
		if viper.GetBool("unicode") {
			text = token.ReplaceUnicode(text, c.Has)
		}
		if viper.GetBool("clean") {
			text = token.CleanInvalid(text, c.Has)
		} else {
			text = token.PlainText(text)
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}
