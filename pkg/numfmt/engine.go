package numfmt

import "github.com/rpgo/numfmt/pkg/decimal"

// EngineOptions are the per-call layout settings passed to an Engine.
type EngineOptions struct {
	MinimumFractionDigits int
	MaximumFractionDigits int
	UseGrouping           bool
}

// Engine renders a number as tagged parts for a locale. Implementations
// must always emit ASCII digits and must not round below
// MaximumFractionDigits.
type Engine interface {
	FormatToParts(n decimal.Number, locale string, opts EngineOptions) ([]Part, error)
}
