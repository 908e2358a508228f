package stockchart

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when the series is empty after cleaning and cutoff
// filtering. Callers suppress position rendering on it, they do not crash.
var ErrNoData = errors.New("no data in the selected period")

// InvalidInputError reports a structurally broken input record: an unknown
// transaction side, or a bar sequence that is not strictly ascending by date.
type InvalidInputError struct {
	Field  string // which part of the record is broken
	Detail string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Detail)
}

func invalidInput(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Detail: fmt.Sprintf(format, args...)}
}
