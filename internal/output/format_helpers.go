package output

import (
	"github.com/rpgo/numfmt/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// failureRate returns the share of failed inputs as a percentage.
func failureRate(batch *domain.FormatBatch) decimal.Decimal {
	if len(batch.Results) == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(batch.FailedCount())).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(batch.Results))))
}
