package numfmt

import "strings"

// Polisher transforms a part sequence after locale formatting and
// before concatenation. Polishers must not modify their input slice.
type Polisher func(parts []Part) []Part

// Polish applies polishers left to right.
func Polish(parts []Part, polishers ...Polisher) []Part {
	for _, p := range polishers {
		parts = p(parts)
	}
	return parts
}

// ForceTrailingDecimal appends a decimal separator part unless the
// sequence already contains one.
func ForceTrailingDecimal(separator string) Polisher {
	return func(parts []Part) []Part {
		for _, p := range parts {
			if p.Kind == PartDecimal {
				return parts
			}
		}
		out := make([]Part, len(parts), len(parts)+1)
		copy(out, parts)
		return append(out, Part{Kind: PartDecimal, Value: separator})
	}
}

var minusSigns = strings.NewReplacer(
	"\u2212", "-", // MINUS SIGN
	"\ufe63", "-", // SMALL HYPHEN-MINUS
	"\uff0d", "-", // FULLWIDTH HYPHEN-MINUS
	"\u2796", "-", // HEAVY MINUS SIGN
	"\u207b", "-", // SUPERSCRIPT MINUS
	"\u208b", "-", // SUBSCRIPT MINUS
)

// NormalizeMinusSigns rewrites Unicode minus glyphs to ASCII hyphen-minus.
func NormalizeMinusSigns(s string) string {
	return minusSigns.Replace(s)
}
