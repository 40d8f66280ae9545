package numfmt

// MaximumFractionDigits is the largest fraction digit count the locale
// engine is asked to keep. Inputs with more fraction digits are rounded
// half away from zero at this position.
const MaximumFractionDigits = 20

// DerivedOptions is the fully resolved, locale-concrete configuration a
// Formatter closes over.
type DerivedOptions struct {
	Locale                string `json:"locale" yaml:"locale"`
	AllowNegative         bool   `json:"allow_negative" yaml:"allow_negative"`
	AllowFloat            bool   `json:"allow_float" yaml:"allow_float"`
	UseGrouping           bool   `json:"use_grouping" yaml:"use_grouping"`
	MinimumFractionDigits int    `json:"minimum_fraction_digits" yaml:"minimum_fraction_digits"`
	ForceTrailingDecimal  bool   `json:"force_trailing_decimal" yaml:"force_trailing_decimal"`
	DecimalSeparator      string `json:"decimal_separator" yaml:"decimal_separator"`
}

// NormalizedOptions produce the canonical, grouping-free en-US form used
// for storage independent of the display locale.
var NormalizedOptions = DerivedOptions{
	Locale:                "en-US",
	AllowNegative:         true,
	AllowFloat:            true,
	UseGrouping:           false,
	MinimumFractionDigits: 0,
	ForceTrailingDecimal:  false,
	DecimalSeparator:      ".",
}
