package numfmt

import "strings"

var normalizedFormatter = NewFormatter(NormalizedOptions)

// FormatToNormalizedForm renders value in the canonical en-US form
// without grouping, e.g. 1234.5 -> "1234.5".
func FormatToNormalizedForm(value any) (string, error) {
	return normalizedFormatter.Format(value)
}

// FactoryToFormatSimplifiedInputForLocale returns a function that swaps
// every period in an already canonical literal for the locale's decimal
// separator. It is a textual substitution for values too long to hold
// in a native number; no other character is touched.
func FactoryToFormatSimplifiedInputForLocale(opts DerivedOptions) func(simplifiedInput string) string {
	separator := opts.DecimalSeparator
	return func(simplifiedInput string) string {
		return strings.ReplaceAll(simplifiedInput, ".", separator)
	}
}
