// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// The chainable [Validator] backs the client-side recipe form, where every
// control is validated on its own. [Struct] validates whole request bodies in the
// backend service layer using struct tags. Both report failures as
// [apperr.FieldError] values carrying a machine-readable rule code.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
)

// # Rule Codes

const (
	RuleRequired   = "required"
	RuleMinLength  = "minlength"
	RuleMaxLength  = "maxlength"
	RuleInvalidURL = "invalid_url"
	RuleUUID       = "uuid"
)

var (
	// urlRegex requires https:// and a host with at least one dot-separated label.
	urlRegex = regexp.MustCompile(`^https://[^.\s]+(\.[^.\s]+)+`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if blank(value) {
		v.add(field, RuleRequired, "This field is required")
	}
	return v
}

// MinLen fails if the trimmed Unicode character count is below min.
//
// An empty value is exempt; pair with [Validator.Required] to reject it.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if tooShort(value, min) {
		v.add(field, RuleMinLength, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// MaxLen fails if the trimmed Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if tooLong(value, max) {
		v.add(field, RuleMaxLength, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Length applies [Validator.MinLen] and [Validator.MaxLen] with inclusive bounds.
func (v *Validator) Length(field, value string, min, max int) *Validator {
	return v.MinLen(field, value, min).MaxLen(field, value, max)
}

// URL fails unless the value is an https URL whose host has a dot-separated label.
//
// # Format
//
// "https://example.com/p.png" passes; "http://example.com" and
// "https://nodothost" fail. The empty value is exempt.
func (v *Validator) URL(field, value string) *Validator {
	if value != "" && !urlRegex.MatchString(value) {
		v.add(field, RuleInvalidURL, "Must be a valid https URL")
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method; call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// Errors returns a copy of the collected field errors.
func (v *Validator) Errors() []apperr.FieldError {
	if len(v.errs) == 0 {
		return nil
	}
	out := make([]apperr.FieldError, len(v.errs))
	copy(out, v.errs)
	return out
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, rule, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Rule: rule, Message: message})
}

// The helpers below are shared with the struct tags so that the form and the
// backend count characters the same way.

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func trimmedLen(value string) int {
	return utf8.RuneCountInString(strings.TrimSpace(value))
}

// tooShort exempts only the empty value; whitespace padding is trimmed first.
func tooShort(value string, min int) bool {
	return value != "" && trimmedLen(value) < min
}

func tooLong(value string, max int) bool {
	return trimmedLen(value) > max
}

// MatchURL reports whether value has the https URL shape accepted by [Validator.URL].
func MatchURL(value string) bool {
	return urlRegex.MatchString(value)
}
