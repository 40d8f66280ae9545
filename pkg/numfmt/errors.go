package numfmt

import (
	"errors"
	"strings"
)

// ErrUnknownLocale is returned by an Engine for locale identifiers it
// cannot resolve.
var ErrUnknownLocale = errors.New("unknown locale")

// FormattingError reports every constraint a value violated. It is an
// input-contract violation, not a recoverable runtime condition.
type FormattingError struct {
	Reasons []string
}

func (e *FormattingError) Error() string {
	return strings.Join(e.Reasons, ", ")
}

func newFormattingError(reasons ...string) *FormattingError {
	return &FormattingError{Reasons: reasons}
}
