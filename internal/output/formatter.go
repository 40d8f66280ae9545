package output

import (
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/rpgo/numfmt/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown report format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(batch *domain.FormatBatch) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.FormatBatch) ([]byte, error)
}

func (ff FormatterFunc) Format(b *domain.FormatBatch) ([]byte, error) { return ff.F(b) }
func (ff FormatterFunc) Name() string                                { return ff.ID }

// WriteFormatted runs a formatter and writes its output to w.
func WriteFormatted(w io.Writer, f Formatter, batch *domain.FormatBatch) error {
	data, err := f.Format(batch)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	PlainFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":       "console",
	"text":        "console",
	"txt":         "plain",
	"lines":       "plain",
	"yml":         "yaml",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
