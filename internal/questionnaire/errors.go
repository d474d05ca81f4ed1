package questionnaire

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownStep is returned for step numbers outside 1..TotalSteps.
	ErrUnknownStep = errors.New("unknown step")
	// ErrNotFinalStep is returned by Submit before the last step is reached.
	ErrNotFinalStep = errors.New("questionnaire is not on the final step")
)

// FieldError is a failed rule of a single field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError carries every failed field of a step.
type ValidationError struct {
	Step   int
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "step %d validation failed:", e.Step)
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Fields returns the names of the invalid fields in step order.
func (e *ValidationError) Fields() []string {
	names := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		names = append(names, err.Field)
	}
	return names
}

// Message returns the message for field, or "" when the field is valid.
func (e *ValidationError) Message(field string) string {
	for _, err := range e.Errors {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// FieldErrors extracts the field errors from err, if it is a validation error.
func FieldErrors(err error) []FieldError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Errors
	}
	return nil
}
