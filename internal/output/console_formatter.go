package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/rpgo/numfmt/internal/domain"
)

var (
	errorColor      = color.New(color.FgRed)
	simplifiedColor = color.New(color.FgYellow)
	headerColor     = color.New(color.Bold)
)

// ConsoleFormatter renders an aligned input/output table with a summary line.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(batch *domain.FormatBatch) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, headerColor.Sprintf("Profile: %s (%s)", batch.Profile, batch.Locale))

	width := len("INPUT")
	for _, r := range batch.Results {
		width = max(width, utf8.RuneCountInString(r.Input))
	}
	rule := strings.Repeat("-", width+32)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "%s  %s\n", pad("INPUT", width), "OUTPUT")
	for _, r := range batch.Results {
		var out string
		switch {
		case r.Failed():
			out = errorColor.Sprintf("error: %s", r.Error)
		case r.Route == domain.RouteSimplified:
			out = r.Output + " " + simplifiedColor.Sprint("(simplified)")
		default:
			out = r.Output
		}
		fmt.Fprintf(&buf, "%s  %s\n", pad(r.Input, width), out)
	}
	fmt.Fprintln(&buf, rule)

	failed := batch.FailedCount()
	fmt.Fprintf(&buf, "%d formatted, %d failed (%s)\n", len(batch.Results)-failed, failed, FormatPercentage(failureRate(batch)))
	return buf.Bytes(), nil
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// PlainFormatter writes one output per line, suitable for piping.
type PlainFormatter struct{}

func (p PlainFormatter) Name() string { return "plain" }

func (p PlainFormatter) Format(batch *domain.FormatBatch) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range batch.Results {
		if r.Failed() {
			fmt.Fprintf(&buf, "ERROR: %s\n", r.Error)
			continue
		}
		fmt.Fprintln(&buf, r.Output)
	}
	return buf.Bytes(), nil
}
