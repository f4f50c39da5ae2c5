// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond writes HTTP responses for the recipe API.
//
// Successful responses carry the bare resource: one recipe, or the ordered
// array of recipes. Every failure is written as an [ErrorEnvelope], which the
// client side decodes back into an [apperr.AppError].
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/platform/constants"
	"github.com/taibuivan/cookbook/internal/platform/ctxutil"
)

// ErrorEnvelope is the body of every error response.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// Envelope returns the client-safe view of appError. The cause is dropped.
func Envelope(appError *apperr.AppError) ErrorEnvelope {
	return ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	}
}

// JSON writes payload with the given status.
func JSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

// NoContent writes an empty 204.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error writes err as an envelope.
//
// Errors that are not *apperr.AppError become INTERNAL_ERROR. Every 5xx is
// logged with its cause on the request logger.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	ctx := request.Context()

	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		attrs := append([]any{
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		}, ctxutil.LogAttrs(ctx)...)
		ctxutil.Logger(ctx).ErrorContext(ctx, "api_server_error", attrs...)
	}

	JSON(writer, appError.HTTPStatus, Envelope(appError))
}
