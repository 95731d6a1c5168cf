package scenario

import "fmt"

// ValidationError reports user input the engines cannot run.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// ErrInvalidInput creates a validation error
func ErrInvalidInput(msg string) error {
	return &ValidationError{Message: msg}
}

// ErrInvalidInputf is ErrInvalidInput with formatting.
func ErrInvalidInputf(format string, args ...any) error {
	return ErrInvalidInput(fmt.Sprintf(format, args...))
}
