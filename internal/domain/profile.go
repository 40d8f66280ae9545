package domain

// Profile is a user-facing formatting profile. Unset pointer fields fall
// back to their defaults during derivation (all true).
type Profile struct {
	Description           string `yaml:"description,omitempty" toml:"description" json:"description,omitempty"`
	Locale                string `yaml:"locale,omitempty" toml:"locale" json:"locale,omitempty"`
	AllowNegative         *bool  `yaml:"allow_negative,omitempty" toml:"allow_negative" json:"allow_negative,omitempty"`
	AllowFloat            *bool  `yaml:"allow_float,omitempty" toml:"allow_float" json:"allow_float,omitempty"`
	UseGrouping           *bool  `yaml:"use_grouping,omitempty" toml:"use_grouping" json:"use_grouping,omitempty"`
	MinimumFractionDigits int    `yaml:"minimum_fraction_digits,omitempty" toml:"minimum_fraction_digits" json:"minimum_fraction_digits,omitempty"`
	ForceTrailingDecimal  bool   `yaml:"force_trailing_decimal,omitempty" toml:"force_trailing_decimal" json:"force_trailing_decimal,omitempty"`
	// DecimalSeparator overrides the locale's separator when set.
	DecimalSeparator string `yaml:"decimal_separator,omitempty" toml:"decimal_separator" json:"decimal_separator,omitempty"`
}

// Configuration is the top-level structure of a profiles file.
type Configuration struct {
	DefaultProfile string             `yaml:"default_profile" toml:"default_profile" json:"default_profile"`
	Profiles       map[string]Profile `yaml:"profiles" toml:"profiles" json:"profiles"`
}

// Bool returns a pointer to b, for filling optional profile fields.
func Bool(b bool) *bool { return &b }
