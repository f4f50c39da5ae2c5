// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package bind turns the parts of an HTTP request into typed values.
package bind

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/cookbook/internal/platform/validate"
)

// maxBodyBytes caps request bodies; a recipe is a few kilobytes at most.
const maxBodyBytes = 1 << 20

// JSON decodes exactly one JSON value of type T from the request body.
//
// Unknown fields, trailing data and oversized bodies all fail with
// [validate.ErrInvalidJSON], so a typo in a client payload is reported instead
// of silently dropped.
func JSON[T any](writer http.ResponseWriter, request *http.Request) (T, error) {
	var target T

	decoder := json.NewDecoder(http.MaxBytesReader(writer, request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&target); err != nil {
		return target, validate.ErrInvalidJSON
	}
	if decoder.More() {
		return target, validate.ErrInvalidJSON
	}
	return target, nil
}

// PathID returns the {id} segment of the matched route.
func PathID(request *http.Request) string {
	return chi.URLParam(request, "id")
}
