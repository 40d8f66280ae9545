package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/numfmt/internal/domain"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileLoader(t *testing.T) {
	loader := NewProfileLoader()
	assert.NotNil(t, loader)
}

func TestLoadFromFile_YAML(t *testing.T) {
	testConfig := "default_profile: de\n" +
		"profiles:\n" +
		"  de:\n" +
		"    locale: \"de-DE\"\n" +
		"    minimum_fraction_digits: 2\n" +
		"  whole:\n" +
		"    locale: \"en-US\"\n" +
		"    allow_float: false\n" +
		"    allow_negative: false\n" +
		"    force_trailing_decimal: true\n"

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	config, err := NewProfileLoader().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "de", config.DefaultProfile)
	assert.Len(t, config.Profiles, 2)
	assert.Equal(t, 2, config.Profiles["de"].MinimumFractionDigits)
	require.NotNil(t, config.Profiles["whole"].AllowFloat)
	assert.False(t, *config.Profiles["whole"].AllowFloat)
	assert.Nil(t, config.Profiles["de"].AllowFloat)
}

func TestLoadFromFile_TOML(t *testing.T) {
	testConfig := `default_profile = "ch"

[profiles.ch]
locale = "de-CH"
use_grouping = true

[profiles.plain]
locale = "en-US"
use_grouping = false
decimal_separator = "."
`
	path := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	config, err := NewProfileLoader().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ch", config.DefaultProfile)
	require.NotNil(t, config.Profiles["plain"].UseGrouping)
	assert.False(t, *config.Profiles["plain"].UseGrouping)
	assert.Equal(t, ".", config.Profiles["plain"].DecimalSeparator)
}

func TestLoadFromFile_Errors(t *testing.T) {
	loader := NewProfileLoader()

	_, err := loader.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: [unterminated"), 0o644))
	_, err = loader.LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		config  domain.Configuration
		wantErr string
	}{
		{
			name:    "no profiles",
			config:  domain.Configuration{},
			wantErr: "no profiles provided",
		},
		{
			name: "undefined default",
			config: domain.Configuration{
				DefaultProfile: "missing",
				Profiles:       map[string]domain.Profile{"a": {}},
			},
			wantErr: "default profile \"missing\" is not defined",
		},
		{
			name: "too many fraction digits",
			config: domain.Configuration{
				Profiles: map[string]domain.Profile{"a": {MinimumFractionDigits: 21}},
			},
			wantErr: "minimum fraction digits must be between 0 and 20",
		},
		{
			name: "multi-character separator",
			config: domain.Configuration{
				Profiles: map[string]domain.Profile{"a": {DecimalSeparator: ".."}},
			},
			wantErr: "decimal separator must be a single character",
		},
		{
			name: "digit separator",
			config: domain.Configuration{
				Profiles: map[string]domain.Profile{"a": {DecimalSeparator: "5"}},
			},
			wantErr: "cannot be a digit or minus sign",
		},
		{
			name: "unknown locale",
			config: domain.Configuration{
				Profiles: map[string]domain.Profile{"a": {Locale: "!!"}},
			},
			wantErr: "unknown locale",
		},
	}

	loader := NewProfileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.ValidateConfiguration(&tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	loader := NewProfileLoader()
	config := loader.CreateExampleConfiguration()
	require.NoError(t, loader.ValidateConfiguration(config))
	assert.Contains(t, ProfileNames(config), "default")
	assert.Contains(t, ProfileNames(config), "integer")
}

func TestResolve(t *testing.T) {
	config := NewProfileLoader().CreateExampleConfiguration()

	profile, name, err := Resolve(config, "")
	require.NoError(t, err)
	assert.Equal(t, "default", name)
	assert.Equal(t, "en-US", profile.Locale)

	_, name, err = Resolve(config, "de")
	require.NoError(t, err)
	assert.Equal(t, "de", name)

	_, _, err = Resolve(config, "nope")
	assert.True(t, errors.Is(err, ErrProfileNotFound))

	single := &domain.Configuration{Profiles: map[string]domain.Profile{"only": {Locale: "fr-FR"}}}
	_, name, err = Resolve(single, "")
	require.NoError(t, err)
	assert.Equal(t, "only", name)

	config.DefaultProfile = ""
	_, _, err = Resolve(config, "")
	assert.True(t, errors.Is(err, ErrProfileNotFound))
}

func TestDerive(t *testing.T) {
	engine := numfmt.NewCLDREngine(nil)

	opts, err := Derive(domain.Profile{}, engine)
	require.NoError(t, err)
	assert.Equal(t, numfmt.DerivedOptions{
		Locale:           "en-US",
		AllowNegative:    true,
		AllowFloat:       true,
		UseGrouping:      true,
		DecimalSeparator: ".",
	}, opts)

	opts, err = Derive(domain.Profile{Locale: "de-DE", AllowFloat: domain.Bool(false), MinimumFractionDigits: 2}, engine)
	require.NoError(t, err)
	assert.Equal(t, ",", opts.DecimalSeparator)
	assert.False(t, opts.AllowFloat)
	assert.Equal(t, 2, opts.MinimumFractionDigits)

	opts, err = Derive(domain.Profile{Locale: "de-DE", DecimalSeparator: "."}, engine)
	require.NoError(t, err)
	assert.Equal(t, ".", opts.DecimalSeparator)

	_, err = Derive(domain.Profile{Locale: "!!"}, engine)
	assert.True(t, errors.Is(err, numfmt.ErrUnknownLocale))

	_, err = Derive(domain.Profile{MinimumFractionDigits: -1}, engine)
	assert.Error(t, err)
}

func TestLocaleFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"lang only", map[string]string{"LANG": "sv_SE.UTF-8"}, "sv-SE"},
		{"lc_numeric wins", map[string]string{"LANG": "en_US.UTF-8", "LC_NUMERIC": "de_DE.UTF-8"}, "de-DE"},
		{"posix ignored", map[string]string{"LANG": "C"}, ""},
		{"modifier stripped", map[string]string{"LANG": "ca_ES@valencia"}, "ca-ES"},
		{"nothing set", map[string]string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := localeFromLookup(func(key string) string { return tt.env[key] })
			assert.Equal(t, tt.want, got)
		})
	}
}
