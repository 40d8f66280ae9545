package domain

// Route names how an input reached its output.
type Route string

const (
	// RouteNumber is the regular validate-and-format path.
	RouteNumber Route = "number"
	// RouteSimplified substitutes the decimal marker in the canonical
	// literal because the value has more fraction digits than the
	// formatter keeps.
	RouteSimplified Route = "simplified"
)

// FormatResult is the outcome for one input of a batch.
type FormatResult struct {
	Input      string `json:"input" yaml:"input"`
	Kind       string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Route      Route  `json:"route,omitempty" yaml:"route,omitempty"`
	Output     string `json:"output,omitempty" yaml:"output,omitempty"`
	Normalized string `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the input could not be formatted.
func (r FormatResult) Failed() bool { return r.Error != "" }

// FormatBatch collects the results of formatting many inputs with one profile.
type FormatBatch struct {
	Profile string         `json:"profile" yaml:"profile"`
	Locale  string         `json:"locale" yaml:"locale"`
	Results []FormatResult `json:"results" yaml:"results"`
}

// FailedCount returns the number of failed inputs.
func (b *FormatBatch) FailedCount() int {
	n := 0
	for _, r := range b.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}
