package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIdentifier = errors.New("invalid table identifier")
	ErrNotInitialized    = errors.New("client is not initialized")
	ErrUnknownCategory   = errors.New("unknown formatter category")
)

// TableNotFoundError is returned when a schema/table pair does not resolve
// to a table during initialization.
type TableNotFoundError struct {
	Schema string
	Table  string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("could not find information about table '%s.%s'", e.Schema, e.Table)
}

// UnknownFieldError is returned when a row definition operation references
// a column the table does not have.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field '%s'", e.Field)
}
