package errors

import "fmt"

// ParseError wraps a specific error with context about where it occurred.
type ParseError struct {
	Line   int
	Record []string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v (record: %v)", e.Line, e.Err, e.Record)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError reports a user-entered value that could not be accepted.
// Field names the offending input so the caller can point the user at it.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v (value: %q)", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Parser errors
var (
	ErrInvalidFieldCount = fmt.Errorf("invalid field count")
	ErrEmptyName         = fmt.Errorf("empty group name")
	ErrInvalidRate       = fmt.Errorf("invalid rate")
)

// Redistribution errors
var (
	ErrInvalidWeight  = fmt.Errorf("invalid weight")
	ErrNegativeWeight = fmt.Errorf("negative weight")
	ErrWeightCount    = fmt.Errorf("weight count does not match curve count")
	ErrBucketCount    = fmt.Errorf("invalid bucket count")
	ErrInvalidTotal   = fmt.Errorf("invalid total")
	ErrNonFiniteSum   = fmt.Errorf("distribution sum is not finite")
)

// Session errors
var (
	ErrGroupNotFound = fmt.Errorf("group not found")
)
