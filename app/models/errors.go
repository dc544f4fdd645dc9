package models

import "fmt"

// ValidationError reports a malformed or missing input field. It is
// rejected before any write reaches the database.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
