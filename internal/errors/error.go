// Package errors provides the structured, coded errors surfaced by
// the wayfind CLI and dev server.
package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryResolution Category = "resolution"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// WayfindError is a structured error with a code, suggestion, and
// documentation link.
type WayfindError struct {
	// Code is a unique error identifier (e.g. "W001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *WayfindError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *WayfindError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *WayfindError) WithSuggestion(s string) *WayfindError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *WayfindError) WithDetail(d string) *WayfindError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *WayfindError) Wrap(err error) *WayfindError {
	e.Wrapped = err
	return e
}

// New creates a WayfindError from a registered error code.
func New(code string) *WayfindError {
	template, ok := registry[code]
	if !ok {
		return &WayfindError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &WayfindError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
		DocURL:     template.DocURL,
	}
}

// Newf creates a new WayfindError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *WayfindError {
	return &WayfindError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a WayfindError.
func FromError(err error, code string) *WayfindError {
	if err == nil {
		return nil
	}
	if we, ok := err.(*WayfindError); ok {
		return we
	}
	return New(code).Wrap(err)
}
