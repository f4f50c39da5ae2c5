// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form

import "context"

// Prompts shown through the [Confirmer].
const (
	PromptDiscard = "You have unsaved changes. Discard them?"
	promptDelete  = "Do you want to delete %s?"
)

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(context context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to [Confirmer].
type ConfirmFunc func(context context.Context, prompt string) (bool, error)

func (fn ConfirmFunc) Confirm(context context.Context, prompt string) (bool, error) {
	return fn(context, prompt)
}

// Always answers every prompt with the same value.
type Always bool

func (a Always) Confirm(context.Context, string) (bool, error) { return bool(a), nil }

// LeaveStatus is what the guard needs to know about the editor.
type LeaveStatus struct {
	Pristine  bool
	Submitted bool
}

// Guard permits leaving when nothing was changed or a submission was accepted.
func Guard(status LeaveStatus) bool {
	return status.Pristine || status.Submitted
}
