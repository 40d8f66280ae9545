package numfmt

import (
	"fmt"
	"math/big"

	"github.com/rpgo/numfmt/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

const (
	reasonNaN        = "value is not a number"
	reasonNegative   = "negative values are not allowed"
	reasonFractional = "fractional values are not allowed"
)

// ToNumber converts a supported Go numeric value into a decimal.Number.
// Supported: all int and uint kinds, float32, float64, big.Int and *big.Int,
// shopspring decimal.Decimal and decimal.Number.
func ToNumber(value any) (decimal.Number, error) {
	switch v := value.(type) {
	case decimal.Number:
		return v, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int8:
		return decimal.NewFromInt(int64(v)), nil
	case int16:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint:
		return decimal.NewFromUint(uint64(v)), nil
	case uint8:
		return decimal.NewFromUint(uint64(v)), nil
	case uint16:
		return decimal.NewFromUint(uint64(v)), nil
	case uint32:
		return decimal.NewFromUint(uint64(v)), nil
	case uint64:
		return decimal.NewFromUint(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case *big.Int:
		if v == nil {
			return decimal.Number{}, newFormattingError("value is nil")
		}
		return decimal.NewFromBigInt(v), nil
	case big.Int:
		return decimal.NewFromBigInt(&v), nil
	case stddec.Decimal:
		return decimal.NewFromDecimal(v), nil
	}
	return decimal.Number{}, newFormattingError(fmt.Sprintf("value of type %T is not a number", value))
}

// Validate checks n against the constraints in opts and returns a
// *FormattingError listing every violated rule, or nil.
func Validate(opts DerivedOptions, n decimal.Number) error {
	var reasons []string
	if n.IsNaN() {
		reasons = append(reasons, reasonNaN)
	}
	if !opts.AllowNegative && n.IsNegative() {
		reasons = append(reasons, reasonNegative)
	}
	// Integer representations are always integral.
	if !opts.AllowFloat && n.IsFractional() && !n.IsNaN() && !n.IsIntegral() {
		reasons = append(reasons, reasonFractional)
	}
	if len(reasons) > 0 {
		return newFormattingError(reasons...)
	}
	return nil
}
