package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/numfmt/internal/domain"
)

// GenerateReport writes batch to w using the named format.
func GenerateReport(w io.Writer, batch *domain.FormatBatch, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(w, f, batch)
}
