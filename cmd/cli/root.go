package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	themeName string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "warden-cli",
	Short: "warden-cli reviews Python snippets from the terminal.",
	Long: `A CLI for Snippet-Warden. It runs the same review pipeline as the web
application (rule checks, complexity, flake8, black) against local files and
can export the report as PDF or Markdown.

External tools are configured exactly like the server: BLACK_PATH,
FLAKE8_PATH and WKHTMLTOPDF_PATH from the environment or a .env file.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&themeName, "theme", string(ThemeCyan), "Color theme for text output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	for key, flag := range map[string]string{"THEME": "theme", "NO_COLOR": "no-color"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("SW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if viper.GetBool("NO_COLOR") {
		color.NoColor = true
	}
}
