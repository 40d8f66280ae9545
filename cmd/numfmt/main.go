package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// errInputsFailed signals that the report was written but some inputs
// could not be formatted.
var errInputsFailed = errors.New("some inputs could not be formatted")

var (
	configPath  string
	profileName string
	localeFlag  string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:           "numfmt",
	Short:         "Locale-aware number formatting for input fields",
	Long:          `numfmt formats numbers the way a locale-aware input field displays them: Latin digits, ASCII minus, locale separators.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel)
	},
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "profiles file (.yaml, .yml or .toml); built-in profiles when empty")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "profile name (defaults to the file's default_profile)")
	rootCmd.PersistentFlags().StringVarP(&localeFlag, "locale", "l", "", "override the profile locale (BCP 47, e.g. de-DE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "log level (trace|debug|info|warning|error)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInputsFailed) {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
		}
		stop()
		os.Exit(1)
	}
}
