package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the code of the outermost AppError in the chain, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err carries the given code
func HasCode(err error, code string) bool {
	return err != nil && GetCode(err) == code
}

// UserMessage returns the message of the innermost AppError, which is the one
// written for the person at the terminal.
func UserMessage(err error) string {
	msg := err.Error()
	for err != nil {
		var appErr *AppError
		if !stderrors.As(err, &appErr) {
			break
		}
		msg = appErr.Message
		err = appErr.Cause
	}
	return msg
}

// Predefined error codes
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeInternalError    = "INTERNAL_ERROR"
)

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// InvalidInput is raised for text that does not parse as the required number.
func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// InvalidInputf is InvalidInput with a cause attached.
func InvalidInputf(cause error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// InvalidParameter is raised for numbers outside their domain.
func InvalidParameter(message string) *AppError {
	return New(CodeInvalidParameter, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

// IsUserError reports whether err should be reported as bad input rather than a failure.
func IsUserError(err error) bool {
	return HasCode(err, CodeInvalidInput) || HasCode(err, CodeInvalidParameter)
}
