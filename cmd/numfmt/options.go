package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/numfmt/internal/config"
	"github.com/rpgo/numfmt/internal/domain"
	"github.com/rpgo/numfmt/pkg/numfmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func loadConfiguration() (*domain.Configuration, error) {
	loader := config.NewProfileLoader()
	if configPath == "" {
		return loader.CreateExampleConfiguration(), nil
	}
	return loader.LoadFromFile(configPath)
}

// resolveOptions loads the selected profile, applies command line
// overrides and derives formatter options from it.
func resolveOptions(cmd *cobra.Command, symbols config.SymbolSource) (numfmt.DerivedOptions, string, error) {
	cfg, err := loadConfiguration()
	if err != nil {
		return numfmt.DerivedOptions{}, "", err
	}
	profile, name, err := config.Resolve(cfg, profileName)
	if err != nil {
		return numfmt.DerivedOptions{}, "", err
	}

	switch {
	case localeFlag != "":
		profile.Locale = localeFlag
	case profile.Locale == "":
		profile.Locale = config.LocaleFromEnv()
	}

	flags := cmd.Flags()
	overrideBool := func(flag string, target **bool) {
		if flags.Lookup(flag) == nil || !flags.Changed(flag) {
			return
		}
		v, _ := flags.GetBool(flag)
		*target = &v
	}
	overrideBool("grouping", &profile.UseGrouping)
	overrideBool("allow-negative", &profile.AllowNegative)
	overrideBool("allow-float", &profile.AllowFloat)
	if flags.Lookup("trailing-decimal") != nil && flags.Changed("trailing-decimal") {
		profile.ForceTrailingDecimal, _ = flags.GetBool("trailing-decimal")
	}
	if flags.Lookup("min-fraction") != nil && flags.Changed("min-fraction") {
		profile.MinimumFractionDigits, _ = flags.GetInt("min-fraction")
	}
	if flags.Lookup("decimal-separator") != nil && flags.Changed("decimal-separator") {
		profile.DecimalSeparator, _ = flags.GetString("decimal-separator")
	}

	opts, err := config.Derive(profile, symbols)
	if err != nil {
		return numfmt.DerivedOptions{}, "", fmt.Errorf("profile %q: %w", name, err)
	}
	log.WithField("profile", name).Debugf("derived options %+v", opts)
	return opts, name, nil
}

// collectInputs returns args, or the non-blank lines of in when no args
// were given. Reading from an interactive terminal is refused.
func collectInputs(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("no values given; pass them as arguments or pipe them on stdin")
	}

	var inputs []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}
