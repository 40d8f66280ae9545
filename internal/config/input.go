package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/numfmt/internal/domain"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"gopkg.in/yaml.v3"
)

// ErrProfileNotFound is returned when a named profile is not defined.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileLoader handles parsing of profile configuration files
type ProfileLoader struct{}

// NewProfileLoader creates a new profile loader
func NewProfileLoader() *ProfileLoader {
	return &ProfileLoader{}
}

// LoadFromFile loads configuration from a YAML or TOML file, chosen by extension
func (pl *ProfileLoader) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		format = "toml"
	}
	return pl.Parse(data, format)
}

// Parse decodes configuration data in the given format ("yaml" or "toml") and validates it
func (pl *ProfileLoader) Parse(data []byte, format string) (*domain.Configuration, error) {
	var config domain.Configuration
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported configuration format %q", format)
	}

	if err := pl.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (pl *ProfileLoader) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Profiles) == 0 {
		return fmt.Errorf("no profiles provided")
	}

	if config.DefaultProfile != "" {
		if _, exists := config.Profiles[config.DefaultProfile]; !exists {
			return fmt.Errorf("default profile %q is not defined", config.DefaultProfile)
		}
	}

	for _, name := range ProfileNames(config) {
		profile := config.Profiles[name]
		if err := pl.validateProfile(&profile); err != nil {
			return fmt.Errorf("profile %q validation failed: %w", name, err)
		}
	}

	return nil
}

// validateProfile validates a single profile
func (pl *ProfileLoader) validateProfile(profile *domain.Profile) error {
	if profile.MinimumFractionDigits < 0 || profile.MinimumFractionDigits > numfmt.MaximumFractionDigits {
		return fmt.Errorf("minimum fraction digits must be between 0 and %d", numfmt.MaximumFractionDigits)
	}
	if n := len([]rune(profile.DecimalSeparator)); n > 1 {
		return fmt.Errorf("decimal separator must be a single character, got %q", profile.DecimalSeparator)
	}
	if profile.DecimalSeparator != "" && strings.ContainsAny(profile.DecimalSeparator, "0123456789-") {
		return fmt.Errorf("decimal separator %q cannot be a digit or minus sign", profile.DecimalSeparator)
	}
	if profile.Locale != "" {
		if _, err := numfmt.DefaultEngine().Symbols(profile.Locale); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the named profile, or the default profile when name is
// empty. The resolved name is returned alongside.
func Resolve(config *domain.Configuration, name string) (domain.Profile, string, error) {
	if name == "" {
		name = config.DefaultProfile
	}
	if name == "" {
		if len(config.Profiles) == 1 {
			for only, profile := range config.Profiles {
				return profile, only, nil
			}
		}
		return domain.Profile{}, "", fmt.Errorf("%w: no profile selected and no default_profile set", ErrProfileNotFound)
	}
	profile, ok := config.Profiles[name]
	if !ok {
		return domain.Profile{}, "", fmt.Errorf("%w: %q (available: %s)", ErrProfileNotFound, name, strings.Join(ProfileNames(config), ", "))
	}
	return profile, name, nil
}

// ProfileNames returns the defined profile names in sorted order
func ProfileNames(config *domain.Configuration) []string {
	names := make([]string, 0, len(config.Profiles))
	for name := range config.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateExampleConfiguration returns the built-in profiles
func (pl *ProfileLoader) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		DefaultProfile: "default",
		Profiles: map[string]domain.Profile{
			"default": {
				Description: "US English, grouped, negatives and fractions allowed",
				Locale:      "en-US",
			},
			"us": {
				Description:           "US English with two fraction digits",
				Locale:                "en-US",
				MinimumFractionDigits: 2,
			},
			"de": {
				Description: "German, comma decimal separator",
				Locale:      "de-DE",
			},
			"ch": {
				Description: "Swiss German",
				Locale:      "de-CH",
			},
			"integer": {
				Description:   "Non-negative whole numbers only",
				Locale:        "en-US",
				AllowNegative: domain.Bool(false),
				AllowFloat:    domain.Bool(false),
			},
			"money": {
				Description:           "Amounts with cents",
				Locale:                "en-US",
				MinimumFractionDigits: 2,
			},
			"normalized": {
				Description: "Canonical storage form",
				Locale:      "en-US",
				UseGrouping: domain.Bool(false),
			},
		},
	}
}
