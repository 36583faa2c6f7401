package mutate

import "fmt"

// ValidationError rejects user input before any state changes.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

type NotFoundError struct {
	Kind string
	Path string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}
