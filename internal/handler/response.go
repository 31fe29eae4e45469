package handler

import (
	"net/http"

	apperrors "github.com/medicore/hms-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// StatusFor maps the error taxonomy to HTTP statuses. Storage failures are
// the only 5xx: everything else is the caller's input.
func StatusFor(err error) int {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrValidation, apperrors.ErrInvalidPatient, apperrors.ErrInvalidDoctor, apperrors.ErrNoServices:
		return http.StatusBadRequest
	case apperrors.ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
