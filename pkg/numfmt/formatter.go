// Package numfmt formats numbers for a locale into text suitable for
// round-trip entry in an input field: Latin digits, an ASCII minus sign
// and no rounding below twenty fraction digits.
package numfmt

import (
	"fmt"

	"github.com/rpgo/numfmt/pkg/decimal"
)

// Formatter formats values with one fixed set of DerivedOptions. It
// holds no mutable state and is safe for concurrent use.
type Formatter struct {
	opts      DerivedOptions
	engine    Engine
	polishers []Polisher
}

// NewFormatter creates a Formatter backed by the default CLDR engine.
func NewFormatter(opts DerivedOptions) *Formatter {
	return NewFormatterWithEngine(DefaultEngine(), opts)
}

// NewFormatterWithEngine creates a Formatter backed by engine.
func NewFormatterWithEngine(engine Engine, opts DerivedOptions) *Formatter {
	var polishers []Polisher
	if opts.ForceTrailingDecimal {
		polishers = append(polishers, ForceTrailingDecimal(opts.DecimalSeparator))
	}
	return &Formatter{opts: opts, engine: engine, polishers: polishers}
}

// MakeFormatter returns the formatting function for opts.
func MakeFormatter(opts DerivedOptions) func(value any) (string, error) {
	return NewFormatter(opts).Format
}

// Options returns a copy of the options the formatter was built with.
func (f *Formatter) Options() DerivedOptions { return f.opts }

// Validate converts value and checks it against the formatter's options.
func (f *Formatter) Validate(value any) (decimal.Number, error) {
	n, err := ToNumber(value)
	if err != nil {
		return decimal.Number{}, err
	}
	if err := Validate(f.opts, n); err != nil {
		return decimal.Number{}, err
	}
	return n, nil
}

// FormatToParts validates value and returns the polished part sequence.
// Minus glyphs inside the parts are left as the locale emitted them.
func (f *Formatter) FormatToParts(value any) ([]Part, error) {
	n, err := f.Validate(value)
	if err != nil {
		return nil, err
	}
	parts, err := f.engine.FormatToParts(n, f.opts.Locale, EngineOptions{
		MinimumFractionDigits: f.opts.MinimumFractionDigits,
		MaximumFractionDigits: MaximumFractionDigits,
		UseGrouping:           f.opts.UseGrouping,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s for locale %q: %w", n, f.opts.Locale, err)
	}
	return Polish(parts, f.polishers...), nil
}

// Format validates value and returns its formatted text. A value that
// violates the options yields a *FormattingError.
func (f *Formatter) Format(value any) (string, error) {
	parts, err := f.FormatToParts(value)
	if err != nil {
		return "", err
	}
	return NormalizeMinusSigns(JoinParts(parts)), nil
}
