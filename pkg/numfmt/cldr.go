package numfmt

import (
	"strings"
	"sync"

	"github.com/rpgo/numfmt/pkg/decimal"
)

// CLDREngine is the default Engine. Locale symbols come from the CLDR
// tables in golang.org/x/text; digits are laid out from the exact
// decimal value so no precision is lost to float conversion.
type CLDREngine struct {
	logger  Logger
	symbols sync.Map // locale string -> Symbols
}

var defaultEngine = NewCLDREngine(nil)

// DefaultEngine returns the shared CLDR engine used by NewFormatter.
func DefaultEngine() *CLDREngine { return defaultEngine }

// NewCLDREngine creates an engine with its own symbol cache. A nil
// logger disables logging.
func NewCLDREngine(logger Logger) *CLDREngine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &CLDREngine{logger: logger}
}

// Symbols returns the (cached) symbols for locale.
func (e *CLDREngine) Symbols(locale string) (Symbols, error) {
	if cached, ok := e.symbols.Load(locale); ok {
		return cached.(Symbols), nil
	}
	tag, err := resolveTag(locale)
	if err != nil {
		e.logger.Errorf("resolving locale %q: %v", locale, err)
		return Symbols{}, err
	}
	sym := probeSymbols(tag, e.logger)
	sym.Locale = locale
	actual, loaded := e.symbols.LoadOrStore(locale, sym)
	if !loaded {
		e.logger.Debugf("probed symbols for %q (%s): decimal=%q group=%q minus=%q grouping=%d/%d",
			locale, sym.Tag, sym.Decimal, sym.Group, sym.MinusPrefix, sym.PrimaryGrouping, sym.SecondaryGrouping)
	}
	return actual.(Symbols), nil
}

// FormatToParts implements Engine.
func (e *CLDREngine) FormatToParts(n decimal.Number, locale string, opts EngineOptions) ([]Part, error) {
	sym, err := e.Symbols(locale)
	if err != nil {
		return nil, err
	}
	return layoutParts(n, sym, opts), nil
}

func layoutParts(n decimal.Number, sym Symbols, opts EngineOptions) []Part {
	if n.IsNaN() {
		return []Part{{Kind: PartNaN, Value: sym.NaN}}
	}

	maxFrac := opts.MaximumFractionDigits
	if maxFrac <= 0 || maxFrac > MaximumFractionDigits {
		maxFrac = MaximumFractionDigits
	}
	minFrac := min(max(opts.MinimumFractionDigits, 0), maxFrac)

	prefix, suffix, prefixKind := sym.PositivePrefix, sym.PositiveSuffix, PartLiteral
	if n.IsNegative() {
		prefix, suffix, prefixKind = sym.MinusPrefix, sym.MinusSuffix, PartMinusSign
	}

	parts := make([]Part, 0, 8)
	if prefix != "" {
		parts = append(parts, Part{Kind: prefixKind, Value: prefix})
	}
	if n.IsInf() {
		parts = append(parts, Part{Kind: PartInfinity, Value: sym.Infinity})
	} else {
		integer, fraction := n.Digits(int32(maxFrac))
		if pad := minFrac - len(fraction); pad > 0 {
			fraction += strings.Repeat("0", pad)
		}
		parts = append(parts, groupInteger(integer, sym, opts.UseGrouping)...)
		if fraction != "" {
			parts = append(parts,
				Part{Kind: PartDecimal, Value: sym.Decimal},
				Part{Kind: PartFraction, Value: fraction})
		}
	}
	if suffix != "" {
		parts = append(parts, Part{Kind: PartLiteral, Value: suffix})
	}
	return parts
}

// groupInteger splits integer digits into integer/group parts using the
// locale's primary and secondary grouping sizes.
func groupInteger(digits string, sym Symbols, useGrouping bool) []Part {
	primary, secondary := sym.PrimaryGrouping, sym.SecondaryGrouping
	if !useGrouping || primary <= 0 || len(digits) < primary+max(sym.MinimumGroupingDigits, 1) {
		return []Part{{Kind: PartInteger, Value: digits}}
	}
	if secondary <= 0 {
		secondary = primary
	}

	// Collected right to left.
	groups := []string{digits[len(digits)-primary:]}
	rest := digits[:len(digits)-primary]
	for len(rest) > secondary {
		groups = append(groups, rest[len(rest)-secondary:])
		rest = rest[:len(rest)-secondary]
	}
	groups = append(groups, rest)

	parts := make([]Part, 0, 2*len(groups)-1)
	for i := len(groups) - 1; i >= 0; i-- {
		parts = append(parts, Part{Kind: PartInteger, Value: groups[i]})
		if i > 0 {
			parts = append(parts, Part{Kind: PartGroup, Value: sym.Group})
		}
	}
	return parts
}
