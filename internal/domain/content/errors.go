package content

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known domain error categories.
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeMalformed  ErrorCode = "MALFORMED_STATE"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeState      ErrorCode = "INVALID_STATE"
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeCancelled  ErrorCode = "CANCELLED"
)

// DomainError represents a typed error enriched with contextual data while
// remaining free from infrastructure dependencies.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches any DomainError carrying the same code, so callers can test
// categories with errors.Is(err, &DomainError{Code: ErrCodeNotFound}).
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// HasCode reports whether err is a DomainError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}

// NewDomainError constructs a DomainError with the supplied code and message.
func NewDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newMalformedError(message string, cause error) *DomainError {
	return NewDomainError(ErrCodeMalformed, message, cause, nil)
}

// NewNotFoundError reports a lookup of an unknown name or identifier.
func NewNotFoundError(kind, name string) *DomainError {
	return NewDomainError(ErrCodeNotFound, fmt.Sprintf("unknown %s", kind), nil, map[string]interface{}{
		kind: name,
	})
}

// NewStateError reports an operation attempted in a state that forbids it.
func NewStateError(message string, context map[string]interface{}) *DomainError {
	return NewDomainError(ErrCodeState, message, nil, context)
}
