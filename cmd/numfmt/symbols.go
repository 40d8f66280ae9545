package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/numfmt/internal/config"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var symbolsOutput string

func init() {
	symbolsCmd.Flags().StringVarP(&symbolsOutput, "output", "o", "console", "output format (console|json|yaml)")
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols [locales...]",
	Short: "Show the separators and grouping probed for locales",
	RunE: func(cmd *cobra.Command, args []string) error {
		locales := args
		if len(locales) == 0 {
			locale := localeFlag
			if locale == "" {
				locale = config.LocaleFromEnv()
			}
			if locale == "" {
				locale = config.DefaultLocale
			}
			locales = []string{locale}
		}

		engine := numfmt.NewCLDREngine(componentLogger("cldr"))
		table := make([]numfmt.Symbols, 0, len(locales))
		for _, locale := range locales {
			sym, err := engine.Symbols(locale)
			if err != nil {
				return err
			}
			table = append(table, sym)
		}
		return writeSymbols(cmd.OutOrStdout(), table, symbolsOutput)
	},
}

func writeSymbols(w io.Writer, table []numfmt.Symbols, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	case "yaml", "yml":
		data, err := yaml.Marshal(table)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "console", "":
		for _, s := range table {
			fmt.Fprintf(w, "%s (%s)\n", s.Locale, s.Tag)
			fmt.Fprintf(w, "  decimal   %q\n", s.Decimal)
			fmt.Fprintf(w, "  group     %q\n", s.Group)
			fmt.Fprintf(w, "  minus     %q %q\n", s.MinusPrefix, s.MinusSuffix)
			fmt.Fprintf(w, "  infinity  %q\n", s.Infinity)
			fmt.Fprintf(w, "  grouping  primary=%d secondary=%d min=%d\n", s.PrimaryGrouping, s.SecondaryGrouping, s.MinimumGroupingDigits)
		}
		return nil
	}
	return fmt.Errorf("unsupported symbols output %q (console|json|yaml)", format)
}
