// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error type shared by the Cookbook backend and client.

On the backend an [AppError] is rendered as the JSON error envelope; the client
decodes that envelope back into an AppError with [FromStatus], so both sides
reason about the same codes.

Codes and statuses:

	NOT_FOUND            404
	VALIDATION_ERROR     400   (Details lists the failing fields)
	CONFLICT             409
	UNPROCESSABLE        422
	RATE_LIMITED         429
	INTERNAL_ERROR       500
	SERVICE_UNAVAILABLE  503
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeValidation         = "VALIDATION_ERROR"
	CodeRateLimited        = "RATE_LIMITED"
	CodeUnprocessable      = "UNPROCESSABLE"
	CodeInternal           = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// AppError is a client-safe error with a machine-readable code.
//
// Cause is for server-side logs only and is never serialized.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is one failed rule on one field.
type FieldError struct {
	// Field is the JSON name of the field, e.g. "title" or "ingredients[2]".
	Field string `json:"field"`
	// Rule is the failed rule, e.g. "required" or "minlength".
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

// Is matches any *AppError with the same code, so
// errors.Is(err, apperr.NotFound("Recipe")) works as a sentinel check.
func (e *AppError) Is(target error) bool {
	var other *AppError
	return errors.As(target, &other) && e.Code == other.Code
}

func newError(code string, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NotFound reports a missing resource: NotFound("Recipe") says "Recipe not found".
func NotFound(resource string) *AppError {
	return newError(CodeNotFound, http.StatusNotFound, resource+" not found")
}

func Conflict(msg string) *AppError {
	return newError(CodeConflict, http.StatusConflict, msg)
}

// ValidationError carries the per-field failures in Details.
func ValidationError(msg string, details ...FieldError) *AppError {
	appError := newError(CodeValidation, http.StatusBadRequest, msg)
	appError.Details = details
	return appError
}

func RateLimited(retryAfterSeconds int) *AppError {
	return newError(CodeRateLimited, http.StatusTooManyRequests,
		fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds))
}

// Unprocessable reports well-formed input the store refused.
func Unprocessable(msg string) *AppError {
	return newError(CodeUnprocessable, http.StatusUnprocessableEntity, msg)
}

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	appError := newError(CodeInternal, http.StatusInternalServerError, "An unexpected error occurred")
	appError.Cause = cause
	return appError
}

// Unavailable reports that the recipe backend could not be reached.
func Unavailable(cause error) *AppError {
	appError := newError(CodeServiceUnavailable, http.StatusServiceUnavailable, "The recipe service is unreachable")
	appError.Cause = cause
	return appError
}

// FromStatus rebuilds an AppError from a decoded envelope. An empty code or
// message is derived from status.
func FromStatus(status int, code, message string, details []FieldError) *AppError {
	if code == "" {
		code = codeForStatus(status)
	}
	if message == "" {
		message = http.StatusText(status)
	}
	appError := newError(code, status, message)
	appError.Details = details
	return appError
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusTooManyRequests:
		return CodeRateLimited
	case http.StatusUnprocessableEntity:
		return CodeUnprocessable
	case http.StatusServiceUnavailable:
		return CodeServiceUnavailable
	default:
		return CodeInternal
	}
}

// As returns the *AppError in err's chain, or nil.
func As(err error) *AppError {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError
	}
	return nil
}
