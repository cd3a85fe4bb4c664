// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// Ingestion errors.
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrMissingField  = errors.New("missing required field")

	// Engine errors.
	ErrUnknownPolicy  = errors.New("unknown cashback policy")
	ErrUnknownPattern = errors.New("unknown search pattern")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError reports a row value that could not be converted.
type ParseError struct {
	Err   error
	Field string
	Value string
	Row   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %s %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewDateError creates a ParseError for a malformed date value.
func NewDateError(row int, field, value string) error {
	return &ParseError{Row: row, Field: field, Value: value, Err: ErrInvalidDate}
}

// SchemaError reports fields an operation needs that a row does not carry at all.
type SchemaError struct {
	Fields []string
	Row    int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("row %d: %v: %s", e.Row, ErrMissingField, strings.Join(e.Fields, ", "))
}

func (e *SchemaError) Unwrap() error {
	return ErrMissingField
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
