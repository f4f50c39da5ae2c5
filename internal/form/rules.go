// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package form is the recipe editor: per-field validation with touched and dirty
tracking, the dynamic ingredient list, the submit decision and the navigation
guard that protects unsaved work.

Validation runs on loss of focus ([Control.Blur]), never per keystroke. Errors
are computed for every committed value but only shown once a control has been
touched.
*/
package form

import "github.com/taibuivan/cookbook/internal/platform/validate"

// Rule checks one committed value and records failures on v.
type Rule func(v *validate.Validator, field, value string)

// Required fails on an empty or whitespace-only value.
func Required() Rule {
	return func(v *validate.Validator, field, value string) {
		v.Required(field, value)
	}
}

// Length fails when the trimmed length is outside [min, max].
// The empty value passes; Required rejects it.
func Length(min, max int) Rule {
	return func(v *validate.Validator, field, value string) {
		v.Length(field, value, min, max)
	}
}

// MinLength is Length without an upper bound.
func MinLength(min int) Rule {
	return func(v *validate.Validator, field, value string) {
		v.MinLen(field, value, min)
	}
}

// URL fails unless the value looks like https://host.tld. The empty value passes.
func URL() Rule {
	return func(v *validate.Validator, field, value string) {
		v.URL(field, value)
	}
}

// Rule sets of the recipe form.
var (
	titleRules        = []Rule{Required(), Length(3, 20)}
	descriptionRules  = []Rule{Required(), Length(3, 200)}
	instructionsRules = []Rule{Required(), Length(3, 200)}
	imageURLRules     = []Rule{Required(), MinLength(3), URL()}
	ingredientRules   = []Rule{Required(), Length(3, 20)}
)
