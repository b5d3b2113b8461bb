package validators

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedType is returned when a value of an unexpected type is
	// passed to a Validator.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when field-level scoping names a field
	// the schema does not know about.
	ErrUnknownField = errors.New("unknown field for validation")
)

// Violation reasons rendered to clients as "<field> is <reason>".
const (
	ReasonRequired      = "required"
	ReasonInvalidEmail  = "not a valid email address"
	ReasonPasswordShort = "shorter than 8 characters"
)

// Violation describes a single schema violation on a named field.
type Violation struct {
	// Field is the JSON name of the violating field.
	Field string

	// Reason is the human-readable violation description.
	Reason string
}

// Message renders the violation in the "<field> is <reason>" form used in
// HTTP validation responses.
func (v Violation) Message() string {
	return v.Field + " is " + v.Reason
}

// SchemaError aggregates every violation found during a single Validate
// call. It implements the error interface; callers recover the individual
// violations with [errors.As].
type SchemaError struct {
	Violations []Violation
}

// Error joins all violation messages with "; ".
func (e *SchemaError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message())
	}

	return strings.Join(messages, "; ")
}
