package booking

import "fmt"

// ValidationError reports malformed optimizer input: an inverted or
// unparsable time window, or missing required inputs. It is returned
// before any upstream call is made.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// NoCoverageError means no candidate plan reached the minimum coverage
// threshold. Callers surface Reason to the user as guidance.
type NoCoverageError struct {
	Reason string
}

func (e *NoCoverageError) Error() string {
	return fmt.Sprintf("noCoverage: %s", e.Reason)
}

func NewNoCoverageError(reason string) error {
	return &NoCoverageError{Reason: reason}
}
