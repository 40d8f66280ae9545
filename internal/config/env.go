package config

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// LocaleFromEnv returns the numeric locale of the environment as a BCP 47
// tag, preferring LC_NUMERIC over LANG. It returns "" when neither is set
// to something usable.
func LocaleFromEnv() string {
	return localeFromLookup(os.Getenv)
}

func localeFromLookup(getenv func(string) string) string {
	locale := ""
	if candidate := parseLocaleString(getenv("LANG")); candidate != "" {
		locale = candidate
	}
	if candidate := parseLocaleString(getenv("LC_NUMERIC")); candidate != "" {
		locale = candidate
	}
	return locale
}

// parseLocaleString turns "sv_SE.UTF-8" into "sv-SE".
func parseLocaleString(localeString string) string {
	if dotIndex := strings.IndexRune(localeString, '.'); dotIndex >= 0 {
		localeString = localeString[:dotIndex]
	}
	if atIndex := strings.IndexRune(localeString, '@'); atIndex >= 0 {
		localeString = localeString[:atIndex]
	}
	if localeString == "" || localeString == "C" || localeString == "POSIX" {
		return ""
	}

	candidate, err := language.Parse(strings.ReplaceAll(localeString, "_", "-"))
	if err != nil || candidate == language.Und {
		return ""
	}
	return candidate.String()
}
