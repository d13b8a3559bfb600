// Package errors defines the operation-scoped failures of the editing engine.
package errors

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	// CodeInvariantViolation marks a broken caller precondition.
	CodeInvariantViolation ErrorCode = "INVARIANT_VIOLATION"
	// CodeNotFound marks a missing terminator, member or class.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeSyncTimeout marks a change confirmation that did not arrive in time.
	CodeSyncTimeout ErrorCode = "SYNC_TIMEOUT"
	// CodeAmbiguousMatch marks a re-identification with zero or several candidates.
	CodeAmbiguousMatch ErrorCode = "AMBIGUOUS_MATCH"
	// CodeInternal marks collaborator failures (IO, parser).
	CodeInternal ErrorCode = "INTERNAL_ERROR"
)

type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]interface{}
}

const (
	CtxPath      = "path"
	CtxOperation = "operation"
	CtxMember    = "member"
	CtxKind      = "kind"
	CtxOffset    = "offset"
)

func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg}
}

// Newf is New with a format string.
func Newf(code ErrorCode, format string, args ...interface{}) error {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(err error, code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg, Err: err}
}

// AddContext attaches a key/value to a DomainError, wrapping plain errors as internal.
func AddContext(err error, key string, value interface{}) error {
	var de *DomainError
	if errors.As(err, &de) {
		de.WithContext(key, value)
		return de
	}
	return &DomainError{
		Code:    CodeInternal,
		Message: "wrapped error",
		Err:     err,
		Context: map[string]interface{}{key: value},
	}
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf returns the code of the outermost DomainError, or "" for plain errors.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
