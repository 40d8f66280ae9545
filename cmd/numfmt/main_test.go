package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, profileName, localeFlag = "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCollectInputs(t *testing.T) {
	got, err := collectInputs(strings.NewReader("1\n\n  2.5 \n-3\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2.5", "-3"}, got)

	got, err = collectInputs(strings.NewReader("ignored"), []string{"7"})
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, got)
}

func TestFormatCommand(t *testing.T) {
	out, err := execute(t, "format", "-p", "de", "-o", "plain", "--", "1234.5", "-7")
	require.NoError(t, err)
	assert.Equal(t, "1.234,5\n-7\n", out)
}

func TestFormatCommand_FailedInputs(t *testing.T) {
	out, err := execute(t, "format", "-p", "integer", "-o", "plain", "--", "5", "1.5")
	assert.ErrorIs(t, err, errInputsFailed)
	assert.Equal(t, "5\nERROR: fractional values are not allowed\n", out)
}

func TestFormatCommand_UnknownProfile(t *testing.T) {
	_, err := execute(t, "format", "-p", "nope", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile not found")
}

func TestNormalizeCommand(t *testing.T) {
	out, err := execute(t, "normalize", "--", "1234.5", "-0", "1e3")
	require.NoError(t, err)
	assert.Equal(t, "1234.5\n-0\n1000\n", out)
}

func TestSymbolsCommand(t *testing.T) {
	out, err := execute(t, "symbols", "-o", "json", "de-DE")
	require.NoError(t, err)
	assert.Contains(t, out, `"decimal": ","`)
	assert.Contains(t, out, `"locale": "de-DE"`)
}

func TestProfilesCommand(t *testing.T) {
	out, err := execute(t, "profiles")
	require.NoError(t, err)
	assert.Contains(t, out, "default *")
	assert.Contains(t, out, "de-DE")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"tool": "numfmt"`)
}
