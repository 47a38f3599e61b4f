// Command emojirender renders emoji token text to PNG and inspects emoji
// configurations.
//
// Usage:
//
//	emojirender render -o out.png "hello [smile]"
//	emojirender plain "hello [smile]"
//	emojirender list --config emojis.toml smile
//
// Every flag can also be set through an EMOJIRENDER_ environment variable,
// for example EMOJIRENDER_ASSETS=./assets.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/emojitext"
	"github.com/gogpu/emojitext/config"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "emojirender",
	Short:         "Render and inspect text with inline emoji tokens",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLog(viper.GetUint("logLevel"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().UintP("logLevel", "v", 0,
		"Verbose mode: 1 for info, 2 for debug")
	_ = viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("logLevel"))

	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Emoji configuration file (.json or .toml), defaults to the built-in set")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().StringP("assets", "a", ".",
		"Directory holding the emoji/ image folder")
	_ = viper.BindPFlag("assets", rootCmd.PersistentFlags().Lookup("assets"))
}

// initConfig reads ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("EMOJIRENDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func initLog(level uint) {
	lvl := slog.LevelWarn
	switch {
	case level >= 2:
		lvl = slog.LevelDebug
	case level == 1:
		lvl = slog.LevelInfo
	}
	emojitext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// loadConfiguration returns the configured emoji set.
func loadConfiguration() (*config.Configuration, error) {
	name := viper.GetString("config")
	if name == "" {
		return config.Default(), nil
	}
	return config.LoadFile(name)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
