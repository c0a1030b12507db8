package domain

import "fmt"

// ValidationError reports an inconsistent domain object
type ValidationError struct {
	Field string
	Err   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %v", e.Field, e.Err)
}
