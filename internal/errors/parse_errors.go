package errors

import "fmt"

// Kind identifies the failure class of a report-processing error
type Kind string

const (
	// Structural failures in the pasted/uploaded table
	KindEmptyInput    Kind = "EMPTY_INPUT"
	KindNoDataRows    Kind = "NO_DATA_ROWS"
	KindMissingColumn Kind = "MISSING_COLUMN"

	// Content failures in individual values
	KindDateParse         Kind = "DATE_PARSE"
	KindNoStrategyColumns Kind = "NO_STRATEGY_COLUMNS"
)

// ParseError represents a categorized report-processing error with context.
// Every pipeline stage fails fast and whole; there are no retries and no
// partial output, so the error carries enough context to be shown to the
// user verbatim.
type ParseError struct {
	Kind       Kind
	Component  string
	Message    string
	Value      string // offending raw value, when one exists
	Underlying error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("[%s:%s] %s: %q", e.Kind, e.Component, e.Message, e.Value)
	}
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Kind, e.Component, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Kind, e.Component, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// Diagnostic returns the short user-facing reason without the kind prefix.
func (e *ParseError) Diagnostic() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %q", e.Message, e.Value)
	}
	return e.Message
}

// IsKind reports whether err is a ParseError of the given kind.
func IsKind(err error, kind Kind) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Kind == kind
}

// KindOf returns the kind of err, or "" if err is not a ParseError.
func KindOf(err error) Kind {
	if pe, ok := err.(*ParseError); ok {
		return pe.Kind
	}
	return ""
}

// Common error constructors

func NewEmptyInputError(component string) *ParseError {
	return &ParseError{
		Kind:      KindEmptyInput,
		Component: component,
		Message:   "input contains no usable text",
	}
}

func NewNoDataRowsError(component string) *ParseError {
	return &ParseError{
		Kind:      KindNoDataRows,
		Component: component,
		Message:   "header recovered but no data row matched its field count",
	}
}

func NewMissingColumnError(component, column string) *ParseError {
	return &ParseError{
		Kind:      KindMissingColumn,
		Component: component,
		Message:   "required column is missing",
		Value:     column,
	}
}

func NewDateParseError(component, rawValue string, underlying error) *ParseError {
	return &ParseError{
		Kind:       KindDateParse,
		Component:  component,
		Message:    "value is not a valid date under the resolved order",
		Value:      rawValue,
		Underlying: underlying,
	}
}

func NewNoStrategyColumnsError(component string) *ParseError {
	return &ParseError{
		Kind:      KindNoStrategyColumns,
		Component: component,
		Message:   "no numeric parameter columns with a strategy prefix were found",
	}
}
