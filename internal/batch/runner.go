// Package batch formats a list of textual inputs with one profile.
package batch

import (
	"context"

	"github.com/rpgo/numfmt/internal/domain"
	"github.com/rpgo/numfmt/pkg/decimal"
	"github.com/rpgo/numfmt/pkg/numfmt"
)

// Runner formats inputs with a fixed formatter. Inputs whose exact value
// has more fraction digits than the formatter keeps are rendered by
// substituting the decimal marker in their canonical literal instead.
type Runner struct {
	formatter  *numfmt.Formatter
	simplified func(string) string
	logger     numfmt.Logger
}

// NewRunner creates a runner for formatter. A nil logger disables logging.
func NewRunner(formatter *numfmt.Formatter, logger numfmt.Logger) *Runner {
	if logger == nil {
		logger = numfmt.NopLogger{}
	}
	return &Runner{
		formatter:  formatter,
		simplified: numfmt.FactoryToFormatSimplifiedInputForLocale(formatter.Options()),
		logger:     logger,
	}
}

// Run formats every input. Per-input failures are recorded in the
// results; only context cancellation stops the batch early, in which
// case the partial batch is returned with the context error.
func (r *Runner) Run(ctx context.Context, profile string, inputs []string) (*domain.FormatBatch, error) {
	batch := &domain.FormatBatch{
		Profile: profile,
		Locale:  r.formatter.Options().Locale,
		Results: make([]domain.FormatResult, 0, len(inputs)),
	}
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		result := r.formatOne(input)
		if result.Failed() {
			r.logger.Warnf("input %q: %s", input, result.Error)
		}
		batch.Results = append(batch.Results, result)
	}
	r.logger.Infof("formatted %d inputs with profile %q (%d failed)", len(inputs), profile, batch.FailedCount())
	return batch, nil
}

func (r *Runner) formatOne(input string) domain.FormatResult {
	result := domain.FormatResult{Input: input}

	n, err := decimal.ParseLiteral(input)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Kind = n.Kind().String()

	if n.FractionDigits() > numfmt.MaximumFractionDigits {
		if _, err := r.formatter.Validate(n); err != nil {
			result.Error = err.Error()
			return result
		}
		canonical := n.String()
		result.Route = domain.RouteSimplified
		result.Output = r.simplified(canonical)
		result.Normalized = canonical
		r.logger.Debugf("input %q exceeds %d fraction digits; substituting decimal marker", input, numfmt.MaximumFractionDigits)
		return result
	}

	out, err := r.formatter.Format(n)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Route = domain.RouteNumber
	result.Output = out
	if normalized, err := numfmt.FormatToNormalizedForm(n); err == nil {
		result.Normalized = normalized
	}
	return result
}
