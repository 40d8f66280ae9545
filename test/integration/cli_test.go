package integration

import (
	"context"
	"testing"

	"github.com/rpgo/numfmt/internal/batch"
	"github.com/rpgo/numfmt/internal/config"
	"github.com/rpgo/numfmt/internal/domain"
	"github.com/rpgo/numfmt/pkg/numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runProfile loads path, derives the named profile and formats inputs.
func runProfile(t *testing.T, path, name string, inputs ...string) *domain.FormatBatch {
	t.Helper()
	parser := config.NewProfileLoader()
	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	profile, resolved, err := config.Resolve(cfg, name)
	require.NoError(t, err)

	engine := numfmt.NewCLDREngine(nil)
	opts, err := config.Derive(profile, engine)
	require.NoError(t, err)

	result, err := batch.NewRunner(numfmt.NewFormatterWithEngine(engine, opts), nil).Run(context.Background(), resolved, inputs)
	require.NoError(t, err)
	return result
}

func outputs(b *domain.FormatBatch) []string {
	out := make([]string, len(b.Results))
	for i, r := range b.Results {
		if r.Failed() {
			out[i] = "!" + r.Error
			continue
		}
		out[i] = r.Output
	}
	return out
}

func TestProfilesFromYAML(t *testing.T) {
	tests := []struct {
		profile string
		inputs  []string
		want    []string
	}{
		{"", []string{"1234.5", "-0.5"}, []string{"1,234.5", "-0.5"}},
		{"cents", []string{"1234.5", "7"}, []string{"1,234.50", "7.00"}},
		{"german", []string{"1234567.25"}, []string{"1.234.567,25"}},
		{"typing", []string{"12", "12.3"}, []string{"12,", "12,3"}},
		{"counter", []string{"3", "-1", "2.5", "-2.5"}, []string{
			"3",
			"!negative values are not allowed",
			"!fractional values are not allowed",
			"!negative values are not allowed, fractional values are not allowed",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			got := runProfile(t, "../testdata/profiles.yaml", tt.profile, tt.inputs...)
			assert.Equal(t, tt.want, outputs(got))
		})
	}
}

func TestProfilesFromTOML(t *testing.T) {
	got := runProfile(t, "../testdata/profiles.toml", "german", "1234.5", "NaN")
	assert.Equal(t, []string{"1.234,5", "!value is not a number"}, outputs(got))

	got = runProfile(t, "../testdata/profiles.toml", "", "1000000")
	assert.Equal(t, "entry", got.Profile)
	assert.Equal(t, []string{"1,000,000"}, outputs(got))
}
