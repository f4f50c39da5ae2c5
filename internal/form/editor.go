// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/cookbook/internal/recipe"
)

// Saver is the part of recipe.Sync the editor drives.
type Saver interface {
	Get(context context.Context, id string) (recipe.Recipe, error)
	Create(context context.Context, draft recipe.Recipe) (recipe.Recipe, error)
	Update(context context.Context, id string, r recipe.Recipe) (recipe.Recipe, error)
	Delete(context context.Context, id string) error
}

// Outcome is the result of [Editor.Submit].
type Outcome int

const (
	// OutcomeInvalid means at least one field failed; nothing was sent.
	OutcomeInvalid Outcome = iota
	// OutcomeUnchanged means an edit equal to the loaded recipe; nothing was sent.
	OutcomeUnchanged
	// OutcomeSaved means the backend accepted the recipe.
	OutcomeSaved
	// OutcomeFailed means the backend rejected or never received the recipe.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeSaved:
		return "saved"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// ErrNotEditing is returned by Delete in create mode.
var ErrNotEditing = errors.New("form: no saved recipe is open")

// Editor drives one create or edit session.
type Editor struct {
	saver   Saver
	confirm Confirmer
	logger  *slog.Logger

	form      *RecipeForm
	id        string
	baseline  recipe.Recipe
	submitted bool
}

// NewEditor returns an editor in create mode with an empty form.
func NewEditor(saver Saver, confirm Confirmer, logger *slog.Logger) *Editor {
	return &Editor{
		saver:   saver,
		confirm: confirm,
		logger:  logger,
		form:    NewRecipeForm(),
	}
}

// Open starts a session. An empty id opens an empty draft; otherwise the recipe
// is loaded and becomes the baseline for change detection.
func (e *Editor) Open(context context.Context, id string) error {
	e.form = NewRecipeForm()
	e.id = id
	e.baseline = recipe.Recipe{}
	e.submitted = false

	if id == "" {
		return nil
	}

	loaded, err := e.saver.Get(context, id)
	if err != nil {
		return err
	}

	e.form.Patch(loaded)
	e.baseline = e.form.Value()
	return nil
}

// Form exposes the controls being edited.
func (e *Editor) Form() *RecipeForm { return e.form }

// Editing reports whether a saved recipe is open.
func (e *Editor) Editing() bool { return e.id != "" }

func (e *Editor) Submitted() bool { return e.submitted }

// Unchanged reports whether the draft equals the loaded recipe, id included.
// It is always false in create mode.
func (e *Editor) Unchanged() bool {
	return e.Editing() && e.form.Value().Equal(e.baseline)
}

// Submit touches every field and decides what to send.
//
// In edit mode an unchanged draft is skipped before anything else. Both modes
// then require a valid form. Only then is the recipe created or updated.
func (e *Editor) Submit(context context.Context) (Outcome, error) {
	e.form.MarkAllAsTouched()

	if e.Unchanged() {
		e.logger.DebugContext(context, "recipe_submit_skipped", slog.String("id", e.id))
		return OutcomeUnchanged, nil
	}

	if err := e.form.Err(); err != nil {
		return OutcomeInvalid, err
	}

	e.submitted = true

	var (
		saved recipe.Recipe
		err   error
	)
	if e.Editing() {
		saved, err = e.saver.Update(context, e.id, e.form.Value())
	} else {
		saved, err = e.saver.Create(context, e.form.Value())
	}
	if err != nil {
		e.submitted = false
		return OutcomeFailed, err
	}

	e.id = saved.ID
	e.form.Patch(saved)
	e.baseline = e.form.Value()
	e.submitted = true
	return OutcomeSaved, nil
}

// Delete asks for confirmation and deletes the open recipe on yes.
// It reports whether the recipe was deleted.
func (e *Editor) Delete(context context.Context) (bool, error) {
	if !e.Editing() {
		return false, ErrNotEditing
	}

	ok, err := e.confirm.Confirm(context, fmt.Sprintf(promptDelete, e.form.Title.Value()))
	if err != nil || !ok {
		return false, err
	}

	if err := e.saver.Delete(context, e.id); err != nil {
		return false, err
	}
	e.submitted = true
	return true, nil
}

// CanLeave evaluates the navigation guard without prompting.
func (e *Editor) CanLeave() bool {
	return Guard(LeaveStatus{Pristine: e.form.Pristine(), Submitted: e.submitted})
}

// Leave permits navigation away, asking to discard unsaved changes if needed.
func (e *Editor) Leave(context context.Context) (bool, error) {
	if e.CanLeave() {
		return true, nil
	}
	return e.confirm.Confirm(context, PromptDiscard)
}
