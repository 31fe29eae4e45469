package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrValidation
	ErrInvalidPatient
	ErrInvalidDoctor
	ErrNoServices
	ErrUnauthorized
	ErrStorage
)

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: message,
	}
}

func InvalidPatient(identifier string) *AppError {
	return &AppError{
		Code:    ErrInvalidPatient,
		Message: fmt.Sprintf("patient not found with given id or name: %s", identifier),
	}
}

func InvalidDoctor(id int64) *AppError {
	return &AppError{
		Code:    ErrInvalidDoctor,
		Message: fmt.Sprintf("doctor not found: %d", id),
	}
}

func NoServices() *AppError {
	return &AppError{
		Code:    ErrNoServices,
		Message: "no valid services on the bill",
	}
}

func Unauthorized() *AppError {
	return &AppError{
		Code:    ErrUnauthorized,
		Message: "invalid credentials",
	}
}

func Storage(err error) *AppError {
	return &AppError{
		Code:    ErrStorage,
		Message: "storage unavailable",
		Err:     err,
	}
}

// CodeOf extracts the error code from err, or ErrStorage if err is not
// an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrStorage
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
