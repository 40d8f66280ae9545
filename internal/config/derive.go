package config

import (
	"fmt"

	"github.com/rpgo/numfmt/internal/domain"
	"github.com/rpgo/numfmt/pkg/numfmt"
)

// DefaultLocale is used by profiles that do not name a locale.
const DefaultLocale = "en-US"

// SymbolSource provides locale symbols; *numfmt.CLDREngine implements it.
type SymbolSource interface {
	Symbols(locale string) (numfmt.Symbols, error)
}

// Derive resolves a profile into the concrete options a formatter needs.
func Derive(profile domain.Profile, symbols SymbolSource) (numfmt.DerivedOptions, error) {
	locale := profile.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	if profile.MinimumFractionDigits < 0 || profile.MinimumFractionDigits > numfmt.MaximumFractionDigits {
		return numfmt.DerivedOptions{}, fmt.Errorf("minimum fraction digits must be between 0 and %d", numfmt.MaximumFractionDigits)
	}

	separator := profile.DecimalSeparator
	if separator == "" {
		sym, err := symbols.Symbols(locale)
		if err != nil {
			return numfmt.DerivedOptions{}, fmt.Errorf("deriving options for locale %q: %w", locale, err)
		}
		separator = sym.Decimal
	}

	return numfmt.DerivedOptions{
		Locale:                locale,
		AllowNegative:         boolOr(profile.AllowNegative, true),
		AllowFloat:            boolOr(profile.AllowFloat, true),
		UseGrouping:           boolOr(profile.UseGrouping, true),
		MinimumFractionDigits: profile.MinimumFractionDigits,
		ForceTrailingDecimal:  profile.ForceTrailingDecimal,
		DecimalSeparator:      separator,
	}, nil
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
