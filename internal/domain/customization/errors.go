package customization

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known error categories raised by the
// customization domain.
type ErrorCode string

const (
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeReservedKey ErrorCode = "RESERVED_KEY"
	ErrCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrCodeEncoding    ErrorCode = "ENCODING_ERROR"
	ErrCodePersistence ErrorCode = "PERSISTENCE_ERROR"
	ErrCodeInternal    ErrorCode = "INTERNAL_ERROR"
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

// Is matches another DomainError carrying the same code, so callers can test
// against the Err* sentinels below.
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

// Sentinels for errors.Is comparisons.
var (
	ErrValidation  = &DomainError{Code: ErrCodeValidation}
	ErrReservedKey = &DomainError{Code: ErrCodeReservedKey}
	ErrNotFound    = &DomainError{Code: ErrCodeNotFound}
	ErrEncoding    = &DomainError{Code: ErrCodeEncoding}
	ErrPersistence = &DomainError{Code: ErrCodePersistence}
)

// NewDomainError constructs a DomainError with the supplied code and message.
func NewDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newValidationError(message string, context map[string]interface{}) *DomainError {
	return NewDomainError(ErrCodeValidation, message, nil, context)
}

func newReservedKeyError(key string) *DomainError {
	return NewDomainError(ErrCodeReservedKey, "key is reserved", nil, map[string]interface{}{
		"key": key,
	})
}

func newEncodingError(message string, cause error) *DomainError {
	return NewDomainError(ErrCodeEncoding, message, cause, nil)
}

// NewPersistenceError wraps a storage failure raised while persisting a record.
func NewPersistenceError(backend string, cause error) *DomainError {
	return NewDomainError(ErrCodePersistence, "persist customization", cause, map[string]interface{}{
		"backend": backend,
	})
}
