// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Pancakes", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				require.Len(t, v.Errors(), 1)
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
				assert.Equal(t, validate.RuleRequired, ae.Details[0].Rule)
			} else {
				assert.Empty(t, v.Errors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Length checks the inclusive [3, 20] bounds used by titles.
*/
func TestValidator_Length(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantRule string
	}{
		{"exactly_min", "abc", ""},
		{"below_min", "ab", validate.RuleMinLength},
		{"exactly_max", strings.Repeat("a", 20), ""},
		{"above_max", strings.Repeat("a", 21), validate.RuleMaxLength},
		{"padding_is_trimmed", "  ab  ", validate.RuleMinLength},
		{"unicode_counts_runes", "ééé", ""},
		{"empty_is_exempt", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Length("title", tt.value, 3, 20)

			if tt.wantRule == "" {
				assert.Empty(t, v.Errors())
				return
			}
			require.Len(t, v.Errors(), 1)
			assert.Equal(t, tt.wantRule, v.Errors()[0].Rule)
		})
	}
}

/*
TestValidator_URL checks the https URL shape rule.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		isValid bool
	}{
		{"https_with_dot", "https://example.com", true},
		{"https_with_path", "https://img.example.com/p.png", true},
		{"plain_http", "http://example.com", false},
		{"no_dot_in_host", "https://nodothost", false},
		{"whitespace_host", "https://exa mple.com", false},
		{"empty_is_exempt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("imageUrl", tt.url)

			if tt.isValid {
				assert.Empty(t, v.Errors())
			} else {
				require.NotEmpty(t, v.Errors())
				assert.Equal(t, validate.RuleInvalidURL, v.Errors()[0].Rule)
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "Pancakes").
		Length("title", "Pancakes", 3, 20).
		URL("imageUrl", "https://img.example.com/p.png").
		Err()

	assert.NoError(t, err)
	assert.Empty(t, v.Errors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").             // Fails
		MinLen("description", "a", 5).     // Fails
		URL("imageUrl", "ftp://nowhere"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

type structFixture struct {
	Title       string   `json:"title" validate:"notblank,trimmin=3,trimmax=20"`
	ImageURL    string   `json:"imageUrl" validate:"notblank,httpsurl"`
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,notblank,trimmin=3,trimmax=20"`
}

/*
TestStruct_Valid verifies that a well-formed struct passes tag validation.
*/
func TestStruct_Valid(t *testing.T) {
	err := validate.Struct(structFixture{
		Title:       "Pancakes",
		ImageURL:    "https://img.example.com/p.png",
		Ingredients: []string{"Flour", "Eggs"},
	})

	assert.NoError(t, err)
}

/*
TestStruct_Invalid verifies JSON field paths and rule codes in the details.
*/
func TestStruct_Invalid(t *testing.T) {
	err := validate.Struct(structFixture{
		Title:       "ab",
		ImageURL:    "http://example.com",
		Ingredients: []string{"Flour", "Ox"},
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 3)

	byField := make(map[string]apperr.FieldError, len(ae.Details))
	for _, detail := range ae.Details {
		byField[detail.Field] = detail
	}

	assert.Equal(t, validate.RuleMinLength, byField["title"].Rule)
	assert.Equal(t, validate.RuleInvalidURL, byField["imageUrl"].Rule)
	assert.Equal(t, validate.RuleMinLength, byField["ingredients[1]"].Rule)
	assert.NotEmpty(t, byField["imageUrl"].Message)
}

/*
TestStruct_TrimsLikeTheValidator verifies that struct tags and the chainable
Validator agree on blank and padded values.
*/
func TestStruct_TrimsLikeTheValidator(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		wantRule string
	}{
		{"blank", "     ", validate.RuleRequired},
		{"padded_short", " ab  ", validate.RuleMinLength},
		{"padded_long", "  " + strings.Repeat("a", 21) + "  ", validate.RuleMaxLength},
		{"padded_ok", "  Pancakes  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(structFixture{
				Title:       tt.title,
				ImageURL:    "https://img.example.com/p.png",
				Ingredients: []string{"Flour"},
			})

			v := &validate.Validator{}
			v.Required("title", tt.title).Length("title", tt.title, 3, 20)

			if tt.wantRule == "" {
				assert.NoError(t, err)
				assert.Empty(t, v.Errors())
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, "title", ae.Details[0].Field)
			assert.Equal(t, tt.wantRule, ae.Details[0].Rule)
			assert.NotEmpty(t, ae.Details[0].Message)

			require.NotEmpty(t, v.Errors())
			assert.Equal(t, tt.wantRule, v.Errors()[0].Rule)
		})
	}
}

/*
TestStruct_BlankIngredient verifies that dive applies the trimmed rules per row.
*/
func TestStruct_BlankIngredient(t *testing.T) {
	err := validate.Struct(structFixture{
		Title:       "Pancakes",
		ImageURL:    "https://img.example.com/p.png",
		Ingredients: []string{"Flour", "    "},
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "ingredients[1]", ae.Details[0].Field)
	assert.Equal(t, validate.RuleRequired, ae.Details[0].Rule)
}
