package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/numfmt/internal/domain"
)

// CSVFormatter implements CSV output (one row per input, in input order).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(batch *domain.FormatBatch) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Profile", "Locale", "Input", "Kind", "Route", "Output", "Normalized", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range batch.Results {
		row := []string{
			batch.Profile,
			batch.Locale,
			r.Input,
			r.Kind,
			string(r.Route),
			r.Output,
			r.Normalized,
			r.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
