//go:build unit

package output

import (
	"testing"

	"github.com/rpgo/numfmt/internal/domain"
	"github.com/shopspring/decimal"
)

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFailureRate(t *testing.T) {
	batch := &domain.FormatBatch{Results: []domain.FormatResult{{Output: "1"}, {Error: "bad"}, {Output: "2"}}}
	got := FormatPercentage(failureRate(batch))
	want := "33.33%"
	if got != want {
		t.Errorf("failureRate = %q, want %q", got, want)
	}
	if !failureRate(&domain.FormatBatch{}).IsZero() {
		t.Errorf("empty batch should have zero failure rate")
	}
}
