package builder

import (
	"errors"
	"fmt"
)

// Required field names reported by ValidationError.
// These are the only fields Build validates; everything else on the
// spec is optional.
const (
	// FieldTitle is the report title.
	FieldTitle = "title"

	// FieldFormat is the output format token.
	FieldFormat = "format"

	// FieldStartDate is the beginning of the reporting period.
	FieldStartDate = "start date"

	// FieldEndDate is the end of the reporting period.
	FieldEndDate = "end date"
)

// ErrBuilderFinalized is returned when Build is called on a builder that
// already built its spec successfully. A builder owns exactly one spec;
// to build another report, create a new builder.
var ErrBuilderFinalized = errors.New("builder already finalized: create a new builder for another report")

// ValidationError reports a missing required field detected by Build.
//
// Design decision: We use a struct carrying the field name rather than
// one sentinel error per field so that callers inspect failures with a
// single errors.As branch. Build fails fast, so a ValidationError always
// names exactly one field: the first missing one in the order title,
// format, start date, end date.
type ValidationError struct {
	// Field is the missing required field, one of the Field* constants.
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("report validation failed: missing required field: %s", e.Field)
}
