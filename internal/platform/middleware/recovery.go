// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/platform/ctxutil"
	"github.com/taibuivan/cookbook/internal/platform/respond"
)

// PanicRecovery turns a handler panic into a 500 envelope and logs the stack.
//
// http.ErrAbortHandler is re-raised so the server can drop the connection.
func PanicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				ctx := request.Context()
				attrs := append([]any{
					slog.Any("error", recovered),
					slog.String("stack", string(debug.Stack())),
				}, ctxutil.LogAttrs(ctx)...)
				logger.ErrorContext(ctx, "panic_recovered", attrs...)

				appError := apperr.Internal(fmt.Errorf("panic: %v", recovered))
				respond.JSON(writer, appError.HTTPStatus, respond.Envelope(appError))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}
