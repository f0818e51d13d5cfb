// Package errors provides categorized error wrapping for the annotation
// toolkit. Errors carry a category and free-form context values so that
// log output and error reporting can group failures without string
// matching on messages.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorCategory groups errors by failure domain.
type ErrorCategory string

const (
	CategoryValidation  ErrorCategory = "validation"
	CategoryFileIO      ErrorCategory = "file-io"
	CategoryFileParsing ErrorCategory = "file-parsing"
	CategoryDatabase    ErrorCategory = "database"
	CategoryAudio       ErrorCategory = "audio-processing"
	CategoryGeneric     ErrorCategory = "generic"
)

// EnhancedError wraps an error with a category, a component name and
// additional context values.
type EnhancedError struct {
	Err       error
	Component string
	Category  ErrorCategory
	Context   map[string]any
	Timestamp time.Time
}

// Error implements the error interface.
func (ee *EnhancedError) Error() string {
	return ee.Err.Error()
}

// Unwrap supports errors.Is and errors.As.
func (ee *EnhancedError) Unwrap() error {
	return ee.Err
}

// GetCategory returns the error category, CategoryGeneric if unset.
func (ee *EnhancedError) GetCategory() ErrorCategory {
	if ee.Category == "" {
		return CategoryGeneric
	}
	return ee.Category
}

// GetContext returns a context value and whether it was present.
func (ee *EnhancedError) GetContext(key string) (any, bool) {
	v, ok := ee.Context[key]
	return v, ok
}

// ErrorBuilder builds an EnhancedError with a fluent API.
type ErrorBuilder struct {
	err       error
	component string
	category  ErrorCategory
	context   map[string]any
}

// New starts building an enhanced error around err.
func New(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// Newf starts building an enhanced error from a format string.
func Newf(format string, args ...any) *ErrorBuilder {
	return New(fmt.Errorf(format, args...))
}

// Component records the component where the error occurred.
func (b *ErrorBuilder) Component(name string) *ErrorBuilder {
	b.component = name
	return b
}

// Category records the error category.
func (b *ErrorBuilder) Category(category ErrorCategory) *ErrorBuilder {
	b.category = category
	return b
}

// Context attaches a key/value pair to the error.
func (b *ErrorBuilder) Context(key string, value any) *ErrorBuilder {
	if b.context == nil {
		b.context = make(map[string]any)
	}
	b.context[key] = value
	return b
}

// Build finalizes the enhanced error.
func (b *ErrorBuilder) Build() error {
	if b.err == nil {
		return nil
	}
	return &EnhancedError{
		Err:       b.err,
		Component: b.component,
		Category:  b.category,
		Context:   b.context,
		Timestamp: time.Now(),
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain matching target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// CategoryOf extracts the category from an error chain, CategoryGeneric
// when no enhanced error is present.
func CategoryOf(err error) ErrorCategory {
	var ee *EnhancedError
	if stderrors.As(err, &ee) {
		return ee.GetCategory()
	}
	return CategoryGeneric
}
