package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// lookups
	"NOT_FOUND":         http.StatusNotFound,
	"ORDER_NOT_FOUND":   http.StatusNotFound,
	"PAYMENT_NOT_FOUND": http.StatusNotFound,

	// business rules
	"EXCEEDS_BALANCE":      http.StatusUnprocessableEntity,
	"RECONCILE_REQUIRED":   http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_STATE":        http.StatusConflict,
	"PAYMENT_NOT_RECORDED": http.StatusInternalServerError,
}

// GetHTTPStatus resolves the HTTP status for a domain error code.
// INVALID_* codes map to 400; anything unknown is a 500 so genuinely
// unexpected failures stay visible.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
