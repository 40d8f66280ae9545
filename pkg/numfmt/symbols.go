package numfmt

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbols is the locale data needed to lay out a decimal number.
type Symbols struct {
	Locale                string `json:"locale" yaml:"locale"`
	Tag                   string `json:"tag" yaml:"tag"`
	Decimal               string `json:"decimal" yaml:"decimal"`
	Group                 string `json:"group" yaml:"group"`
	MinusPrefix           string `json:"minus_prefix" yaml:"minus_prefix"`
	MinusSuffix           string `json:"minus_suffix,omitempty" yaml:"minus_suffix,omitempty"`
	PositivePrefix        string `json:"positive_prefix,omitempty" yaml:"positive_prefix,omitempty"`
	PositiveSuffix        string `json:"positive_suffix,omitempty" yaml:"positive_suffix,omitempty"`
	Infinity              string `json:"infinity" yaml:"infinity"`
	NaN                   string `json:"nan" yaml:"nan"`
	PrimaryGrouping       int    `json:"primary_grouping" yaml:"primary_grouping"`
	SecondaryGrouping     int    `json:"secondary_grouping" yaml:"secondary_grouping"`
	MinimumGroupingDigits int    `json:"minimum_grouping_digits" yaml:"minimum_grouping_digits"`
}

// rootSymbols is used when probing a locale fails.
var rootSymbols = Symbols{
	Decimal:               ".",
	Group:                 ",",
	MinusPrefix:           "-",
	Infinity:              "\u221e",
	NaN:                   "NaN",
	PrimaryGrouping:       3,
	SecondaryGrouping:     3,
	MinimumGroupingDigits: 1,
}

// resolveTag parses a BCP 47 (or POSIX-style) locale and pins the
// numbering system to Latin digits.
func resolveTag(locale string) (language.Tag, error) {
	if locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, locale, err)
	}
	if latn, err := tag.SetTypeForKey("nu", "latn"); err == nil {
		tag = latn
	}
	return tag, nil
}

// sample is one rendered probe value split around its digit runs.
type sample struct {
	prefix     string
	suffix     string
	groups     []int
	groupSep   string
	decimalSep string
}

// segment splits text rendered from a value with intDigits integer
// digits. Digits of any script are recognised so a locale that ignores
// the numbering system override still yields its separators.
func segment(text string, intDigits int) (sample, error) {
	var s sample
	runes := []rune(text)
	start := 0
	for start < len(runes) && !unicode.IsDigit(runes[start]) {
		start++
	}
	if start == len(runes) {
		return s, fmt.Errorf("no digits in %q", text)
	}
	end := len(runes)
	for end > start && !unicode.IsDigit(runes[end-1]) {
		end--
	}
	s.prefix = string(runes[:start])
	s.suffix = string(runes[end:])

	seen := 0
	for i := start; i < end; {
		j := i
		for j < end && unicode.IsDigit(runes[j]) {
			j++
		}
		k := j
		for k < end && !unicode.IsDigit(runes[k]) {
			k++
		}
		sep := string(runes[j:k])
		if seen < intDigits {
			s.groups = append(s.groups, j-i)
			seen += j - i
			if seen < intDigits {
				s.groupSep = sep
			} else if k < end {
				s.decimalSep = sep
			}
		}
		i = k
	}
	if seen != intDigits {
		return s, fmt.Errorf("unexpected digit layout in %q", text)
	}
	return s, nil
}

func probeSymbols(tag language.Tag, logger Logger) Symbols {
	p := message.NewPrinter(tag)
	render := func(v float64, frac int) string {
		return p.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(frac), number.MaxFractionDigits(frac)))
	}

	sym := rootSymbols
	sym.Tag = tag.String()

	neg, err := segment(render(-1234567.5, 1), 7)
	if err != nil {
		logger.Warnf("probing %s: %v; using root symbols", tag, err)
		return sym
	}
	sym.MinusPrefix = neg.prefix
	sym.MinusSuffix = neg.suffix
	if neg.decimalSep != "" {
		sym.Decimal = neg.decimalSep
	}
	switch n := len(neg.groups); {
	case n == 1:
		sym.Group = ""
		sym.PrimaryGrouping = 0
		sym.SecondaryGrouping = 0
	case n == 2:
		sym.Group = neg.groupSep
		sym.PrimaryGrouping = neg.groups[1]
		sym.SecondaryGrouping = neg.groups[1]
	default:
		sym.Group = neg.groupSep
		sym.PrimaryGrouping = neg.groups[n-1]
		sym.SecondaryGrouping = neg.groups[n-2]
	}
	if sym.MinusPrefix == "" && sym.MinusSuffix == "" {
		sym.MinusPrefix = "-"
	}

	if pos, err := segment(render(1234567.5, 1), 7); err == nil {
		sym.PositivePrefix = pos.prefix
		sym.PositiveSuffix = pos.suffix
	}

	sym.MinimumGroupingDigits = minimumGroupingDigits(tag)

	sym.Infinity = probedSymbol(trimAffixes(p.Sprintf("%v", number.Decimal(math.Inf(1))), sym), rootSymbols.Infinity)
	sym.NaN = probedSymbol(p.Sprintf("%v", number.Decimal(math.NaN())), rootSymbols.NaN)
	return sym
}

// cldrMinimumGrouping lists the CLDR minimumGroupingDigits values that
// differ from 1. x/text renders every locale as if the value were 1.
var cldrMinimumGrouping = map[string]int{
	"bg":     2,
	"es":     2,
	"es-419": 1,
	"hr":     2,
	"lv":     2,
	"pl":     2,
	"pt-PT":  2,
}

// minimumGroupingDigits walks the CLDR parent chain of tag (es-MX,
// es-419, es) and returns the first listed value, or 1.
func minimumGroupingDigits(tag language.Tag) int {
	base, script, region := tag.Raw()
	t, err := language.Compose(base, script, region)
	if err != nil {
		t = tag
	}
	for {
		if digits, ok := cldrMinimumGrouping[t.String()]; ok {
			return digits
		}
		if t.IsRoot() {
			return 1
		}
		t = t.Parent()
	}
}

// probedSymbol returns the trimmed probe output, or fallback when the
// locale has no data and x/text emitted currency placeholders instead.
func probedSymbol(probed, fallback string) string {
	probed = strings.TrimSpace(probed)
	if probed == "" || strings.ContainsRune(probed, '\u00a4') {
		return fallback
	}
	return probed
}

func trimAffixes(s string, sym Symbols) string {
	s = strings.TrimPrefix(s, sym.PositivePrefix)
	return strings.TrimSuffix(s, sym.PositiveSuffix)
}
