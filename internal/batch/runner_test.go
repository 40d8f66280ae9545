package batch

import (
	"context"
	"testing"

	"github.com/rpgo/numfmt/internal/domain"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func germanFormatter(allowNegative bool) *numfmt.Formatter {
	return numfmt.NewFormatter(numfmt.DerivedOptions{
		Locale:           "de-DE",
		AllowNegative:    allowNegative,
		AllowFloat:       true,
		UseGrouping:      true,
		DecimalSeparator: ",",
	})
}

func TestRunner_Run(t *testing.T) {
	runner := NewRunner(germanFormatter(false), nil)

	batch, err := runner.Run(context.Background(), "de", []string{
		"1234.5",
		"-2",
		"abc",
		"1.00000000000000000000000001",
		"-1.00000000000000000000000001",
		"99999999999999999999",
	})
	require.NoError(t, err)
	require.Len(t, batch.Results, 6)
	assert.Equal(t, "de", batch.Profile)
	assert.Equal(t, "de-DE", batch.Locale)

	assert.Equal(t, domain.FormatResult{
		Input:      "1234.5",
		Kind:       "float",
		Route:      domain.RouteNumber,
		Output:     "1.234,5",
		Normalized: "1234.5",
	}, batch.Results[0])

	assert.Equal(t, "negative values are not allowed", batch.Results[1].Error)
	assert.Contains(t, batch.Results[2].Error, "invalid number literal")

	assert.Equal(t, domain.RouteSimplified, batch.Results[3].Route)
	assert.Equal(t, "1,00000000000000000000000001", batch.Results[3].Output)
	assert.Equal(t, "1.00000000000000000000000001", batch.Results[3].Normalized)
	assert.Equal(t, "decimal", batch.Results[3].Kind)

	assert.Equal(t, "negative values are not allowed", batch.Results[4].Error)

	assert.Equal(t, "bigint", batch.Results[5].Kind)
	assert.Equal(t, "99.999.999.999.999.999.999", batch.Results[5].Output)

	assert.Equal(t, 3, batch.FailedCount())
}

func TestRunner_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := NewRunner(germanFormatter(true), nil).Run(ctx, "de", []string{"1", "2"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, batch.Results)
}
