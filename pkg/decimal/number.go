package decimal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidLiteral is returned when a string cannot be read as a number.
var ErrInvalidLiteral = errors.New("invalid number literal")

// Kind records which numeric representation a Number was built from.
type Kind int

const (
	// KindInt is a machine integer (any of Go's int/uint types).
	KindInt Kind = iota
	// KindFloat is a binary floating point value.
	KindFloat
	// KindBigInt is an arbitrary-precision integer.
	KindBigInt
	// KindDecimal is an arbitrary-precision decimal.
	KindDecimal
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBigInt:
		return "bigint"
	case KindDecimal:
		return "decimal"
	}
	return "unknown"
}

type special uint8

const (
	finite special = iota
	nan
	posInf
	negInf
)

// Number is an immutable numeric value with exact decimal digits.
// Besides the finite value it can carry the IEEE special values
// (NaN, infinities, negative zero) that a float input may hold.
type Number struct {
	decimal.Decimal
	kind    Kind
	special special
	negZero bool
}

// NewFromInt creates an integer Number
func NewFromInt(value int64) Number {
	return Number{Decimal: decimal.NewFromInt(value), kind: KindInt}
}

// NewFromUint creates an integer Number from an unsigned value
func NewFromUint(value uint64) Number {
	return Number{Decimal: decimal.NewFromBigInt(new(big.Int).SetUint64(value), 0), kind: KindInt}
}

// NewFromFloat creates a Number from a float64 using the shortest
// decimal representation that round-trips to the same float.
func NewFromFloat(value float64) Number {
	switch {
	case math.IsNaN(value):
		return Number{kind: KindFloat, special: nan}
	case math.IsInf(value, 1):
		return Number{kind: KindFloat, special: posInf}
	case math.IsInf(value, -1):
		return Number{kind: KindFloat, special: negInf}
	case value == 0:
		return Number{Decimal: decimal.Zero, kind: KindFloat, negZero: math.Signbit(value)}
	}
	return Number{Decimal: decimal.NewFromFloat(value), kind: KindFloat}
}

// NewFromFloat32 is NewFromFloat for float32 values; digits are the
// shortest representation for 32-bit precision.
func NewFromFloat32(value float32) Number {
	f := float64(value)
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return NewFromFloat(f)
	}
	return Number{Decimal: decimal.NewFromFloat32(value), kind: KindFloat}
}

// NewFromBigInt creates an arbitrary-precision integer Number. A nil
// pointer is treated as zero.
func NewFromBigInt(value *big.Int) Number {
	if value == nil {
		return Number{Decimal: decimal.Zero, kind: KindBigInt}
	}
	return Number{Decimal: decimal.NewFromBigInt(new(big.Int).Set(value), 0), kind: KindBigInt}
}

// NewFromDecimal wraps a shopspring decimal.
func NewFromDecimal(d decimal.Decimal) Number {
	return Number{Decimal: d, kind: KindDecimal}
}

// NaN returns the not-a-number value.
func NaN() Number { return NewFromFloat(math.NaN()) }

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Number { return NewFromFloat(math.Inf(sign)) }

// Kind returns the representation the Number was built from
func (n Number) Kind() Kind { return n.kind }

// IsNaN reports whether n is not-a-number
func (n Number) IsNaN() bool { return n.special == nan }

// IsInf reports whether n is an infinity of either sign
func (n Number) IsInf() bool { return n.special == posInf || n.special == negInf }

// IsNegativeZero reports whether n is a float negative zero
func (n Number) IsNegativeZero() bool { return n.negZero }

// IsNegative reports whether n is below zero, negative infinity or
// negative zero. NaN is never negative.
func (n Number) IsNegative() bool {
	switch n.special {
	case nan, posInf:
		return false
	case negInf:
		return true
	}
	return n.negZero || n.Decimal.IsNegative()
}

// IsFractional reports whether the representation can hold a fractional
// part at all. Integers and big integers cannot.
func (n Number) IsFractional() bool {
	return n.kind == KindFloat || n.kind == KindDecimal
}

// IsIntegral reports whether n is finite and has no fractional part
func (n Number) IsIntegral() bool {
	if n.special != finite {
		return false
	}
	return n.Decimal.IsInteger()
}

// Digits returns the integer and fraction digits of |n| as ASCII strings,
// rounded half away from zero to at most maxFraction fraction digits.
// Trailing fraction zeros are dropped. Special values yield "0", "".
func (n Number) Digits(maxFraction int32) (integer, fraction string) {
	d := n.Decimal.Abs()
	if -d.Exponent() > maxFraction {
		d = d.Round(maxFraction)
	}
	integer, fraction, _ = strings.Cut(d.String(), ".")
	return integer, fraction
}

// FractionDigits returns the number of significant fraction digits in
// the exact representation of n.
func (n Number) FractionDigits() int {
	if n.special != finite {
		return 0
	}
	_, frac, _ := strings.Cut(n.Decimal.Abs().String(), ".")
	return len(frac)
}

// String returns the canonical form: period decimal marker, no grouping,
// ASCII hyphen for negatives.
func (n Number) String() string {
	switch n.special {
	case nan:
		return "NaN"
	case posInf:
		return "Infinity"
	case negInf:
		return "-Infinity"
	}
	if n.negZero {
		return "-0"
	}
	return n.Decimal.String()
}

// ParseLiteral reads a canonical number literal ("12", "-3.5", "1e3",
// "NaN", "Infinity"). Integer literals become KindInt, or KindBigInt
// when they overflow int64. Other literals become KindFloat when a
// float64 holds them exactly (to shortest representation) and
// KindDecimal otherwise.
func ParseLiteral(s string) (Number, error) {
	lit := strings.TrimSpace(s)
	if lit == "" {
		return Number{}, fmt.Errorf("%w: empty input", ErrInvalidLiteral)
	}
	switch strings.ToLower(strings.TrimPrefix(lit, "+")) {
	case "nan":
		return NaN(), nil
	case "infinity", "inf":
		return Inf(1), nil
	case "-infinity", "-inf":
		return Inf(-1), nil
	}

	if isIntegerLiteral(lit) {
		if v, err := strconv.ParseInt(lit, 10, 64); err == nil {
			if v == 0 && strings.HasPrefix(lit, "-") {
				return NewFromFloat(math.Copysign(0, -1)), nil
			}
			return NewFromInt(v), nil
		}
		b, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return Number{}, fmt.Errorf("%w: %q", ErrInvalidLiteral, s)
		}
		return NewFromBigInt(b), nil
	}

	d, err := decimal.NewFromString(lit)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidLiteral, s)
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil && !math.IsInf(f, 0) {
		if f == 0 && math.Signbit(f) {
			return NewFromFloat(f), nil
		}
		if decimal.NewFromFloat(f).Equal(d) {
			return NewFromFloat(f), nil
		}
	}
	return NewFromDecimal(d), nil
}

func isIntegerLiteral(s string) bool {
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
