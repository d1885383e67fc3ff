package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation   Code = "validation"
	CodeNotFound     Code = "not_found"
	CodePersistence  Code = "persistence"
	CodeExternal     Code = "external"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal_error"
)

// AppError carries a machine code, the message shown to the visitor and the
// underlying cause, which is only ever logged.
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// As extracts the first AppError in the chain.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if stdErrors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// CodeOf returns CodeInternal for errors that are not AppErrors.
func CodeOf(err error) Code {
	if ae, ok := As(err); ok {
		return ae.Code
	}
	return CodeInternal
}

func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

var (
	ErrNoFile = func() *AppError {
		return &AppError{Code: CodeValidation, Message: "Please select a file."}
	}
	ErrUnsupportedType = func(filename string) *AppError {
		return &AppError{Code: CodeValidation, Message: "Unsupported file type.", Err: fmt.Errorf("rejected extension in %q", filename)}
	}
	ErrInvalidPage = func(page string) *AppError {
		return &AppError{Code: CodeValidation, Message: "Unknown page.", Err: fmt.Errorf("page %q", page)}
	}
	ErrUnknownService = func(err error) *AppError {
		return &AppError{Code: CodeValidation, Message: "Unknown service.", Err: err}
	}
	ErrMediaNotFound = func(err error) *AppError {
		return &AppError{Code: CodeNotFound, Message: "Media not found", Err: err}
	}
	ErrServiceNotFound = func(err error) *AppError {
		return &AppError{Code: CodeNotFound, Message: "Service not found", Err: err}
	}
	ErrInvalidCredentials = func() *AppError {
		return &AppError{Code: CodeUnauthorized, Message: "Invalid credentials!"}
	}
	ErrUnauthorized = func(err error) *AppError {
		return &AppError{Code: CodeUnauthorized, Message: "Please log in.", Err: err}
	}
	ErrUploadFailed = func(err error) *AppError {
		return &AppError{Code: CodePersistence, Message: "Upload failed", Err: err}
	}
	ErrDeleteFailed = func(err error) *AppError {
		return &AppError{Code: CodePersistence, Message: "Error deleting media", Err: err}
	}
	ErrMailFailed = func(err error) *AppError {
		return &AppError{Code: CodeExternal, Message: "Failed to send message", Err: err}
	}
	ErrInternal = func(err error) *AppError {
		return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
	}
)
