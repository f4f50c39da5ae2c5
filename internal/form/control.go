// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form

import (
	"slices"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/platform/validate"
)

// Control is one form field.
//
// Typed input is buffered by [Control.Input] and only becomes the value on
// [Control.Blur], which is also when the control is validated and touched.
type Control struct {
	name    string
	rules   []Rule
	value   string
	pending string
	touched bool
	dirty   bool
	errs    []apperr.FieldError
}

// NewControl creates an untouched, pristine control holding the empty value.
func NewControl(name string, rules ...Rule) *Control {
	control := &Control{name: name, rules: rules}
	control.validate()
	return control
}

func (c *Control) Name() string { return c.name }

// Value is the committed value.
func (c *Control) Value() string { return c.value }

// Input buffers typed text without committing or validating it.
func (c *Control) Input(text string) {
	c.pending = text
}

// Blur commits buffered input, marks the control touched and validates it.
// A committed change marks the control dirty.
func (c *Control) Blur() {
	if c.pending != c.value {
		c.value = c.pending
		c.dirty = true
	}
	c.touched = true
	c.validate()
}

// Set types text and leaves the field in one step.
func (c *Control) Set(text string) {
	c.Input(text)
	c.Blur()
}

// Patch sets the value programmatically. It does not mark the control dirty.
func (c *Control) Patch(value string) {
	c.value = value
	c.pending = value
	c.validate()
}

func (c *Control) MarkAsTouched() { c.touched = true }

func (c *Control) Touched() bool { return c.touched }

func (c *Control) Dirty() bool { return c.dirty }

// Errors returns the failures of the committed value.
func (c *Control) Errors() []apperr.FieldError {
	return slices.Clone(c.errs)
}

// Has reports whether the given rule code currently fails.
func (c *Control) Has(rule string) bool {
	return slices.ContainsFunc(c.errs, func(e apperr.FieldError) bool { return e.Rule == rule })
}

func (c *Control) Valid() bool { return len(c.errs) == 0 }

// Show returns the errors to display: none until the control is touched.
func (c *Control) Show() []apperr.FieldError {
	if !c.touched {
		return nil
	}
	return c.Errors()
}

func (c *Control) rename(name string) {
	c.name = name
	c.validate()
}

func (c *Control) reset() {
	c.touched = false
	c.dirty = false
}

func (c *Control) validate() {
	v := &validate.Validator{}
	for _, rule := range c.rules {
		rule(v, c.name, c.value)
	}
	c.errs = v.Errors()
}
