package output

import (
	"encoding/json"

	"github.com/rpgo/numfmt/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter serializes the batch as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(batch *domain.FormatBatch) ([]byte, error) {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter serializes the batch as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(batch *domain.FormatBatch) ([]byte, error) {
	return yaml.Marshal(batch)
}
