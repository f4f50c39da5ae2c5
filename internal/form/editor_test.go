// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cookbook/internal/form"
	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/recipe"
	"github.com/taibuivan/cookbook/internal/recipe/recipetest"
)

var discard = slog.New(slog.NewJSONHandler(io.Discard, nil))

// promptRecorder answers with answer and remembers every prompt.
type promptRecorder struct {
	answer  bool
	prompts []string
}

func (p *promptRecorder) Confirm(_ context.Context, prompt string) (bool, error) {
	p.prompts = append(p.prompts, prompt)
	return p.answer, nil
}

type editorFixture struct {
	backend   *recipetest.FakeBackend
	navigator *recipetest.Navigator
	prompts   *promptRecorder
	editor    *form.Editor
}

func newEditorFixture(answer bool) *editorFixture {
	f := &editorFixture{
		backend:   recipetest.NewFakeBackend(recipetest.Catalog()...),
		navigator: &recipetest.Navigator{},
		prompts:   &promptRecorder{answer: answer},
	}
	sync := recipe.NewSync(f.backend, recipe.NewStore(), f.navigator, discard,
		recipe.WithIDGenerator(func() string { return "11111111-2222-4333-8444-555555555555" }))
	f.editor = form.NewEditor(sync, f.prompts, discard)
	return f
}

func (f *editorFixture) methods() []string {
	out := []string{}
	for _, call := range f.backend.Calls {
		out = append(out, call.Method)
	}
	return out
}

/*
TestEditor_UnchangedEditMakesNoNetworkCall verifies an unchanged edit never reaches the backend.
*/
func TestEditor_UnchangedEditMakesNoNetworkCall(t *testing.T) {
	f := newEditorFixture(true)
	ctx := context.Background()

	require.NoError(t, f.editor.Open(ctx, recipetest.OmeletteID))
	calls := f.backend.CallCount()

	outcome, err := f.editor.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, form.OutcomeUnchanged, outcome)
	assert.Equal(t, calls, f.backend.CallCount())
	assert.Zero(t, f.navigator.Lists)
}

/*
TestEditor_UnchangedSkipsBeforeValidity verifies an unchanged invalid edit is still unchanged.
*/
func TestEditor_UnchangedSkipsBeforeValidity(t *testing.T) {
	invalid := recipetest.Catalog()[0]
	invalid.Title = "Pa"
	f := newEditorFixture(true)
	f.backend.Recipes[0] = invalid

	require.NoError(t, f.editor.Open(context.Background(), recipetest.PancakesID))
	outcome, err := f.editor.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, form.OutcomeUnchanged, outcome)
}

/*
TestEditor_ChangedInvalidEditIsBlocked blocks a changed edit that fails validation.
*/
func TestEditor_ChangedInvalidEditIsBlocked(t *testing.T) {
	f := newEditorFixture(true)
	ctx := context.Background()
	require.NoError(t, f.editor.Open(ctx, recipetest.PancakesID))
	calls := f.backend.CallCount()

	f.editor.Form().Title.Set("Pa")
	outcome, err := f.editor.Submit(ctx)

	assert.Equal(t, form.OutcomeInvalid, outcome)
	assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	assert.Equal(t, calls, f.backend.CallCount())
	assert.False(t, f.editor.Submitted())
	assert.NotEmpty(t, f.editor.Form().Title.Show())
}

/*
TestEditor_ChangedEditIsUpdated sends a changed, valid edit as a full replacement.
*/
func TestEditor_ChangedEditIsUpdated(t *testing.T) {
	f := newEditorFixture(true)
	ctx := context.Background()
	require.NoError(t, f.editor.Open(ctx, recipetest.OmeletteID))

	f.editor.Form().Title.Set("Frittata")
	outcome, err := f.editor.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, form.OutcomeSaved, outcome)
	assert.Equal(t, []string{"List", "Update"}, f.methods())

	sent := f.backend.Calls[1].Recipe
	assert.Equal(t, recipetest.OmeletteID, sent.ID)
	assert.Equal(t, "Frittata", sent.Title)
	assert.True(t, sent.IsFavourite(), "favourite is carried through")
	assert.Equal(t, 1, f.navigator.Lists)
	assert.True(t, f.editor.CanLeave())
}

/*
TestEditor_CreateInvalidIsBlocked blocks an invalid draft in create mode.
*/
func TestEditor_CreateInvalidIsBlocked(t *testing.T) {
	f := newEditorFixture(true)
	require.NoError(t, f.editor.Open(context.Background(), ""))

	f.editor.Form().Title.Set("Pancakes")
	outcome, err := f.editor.Submit(context.Background())

	assert.Equal(t, form.OutcomeInvalid, outcome)
	assert.Error(t, err)
	assert.Zero(t, f.backend.CallCount())
}

/*
TestEditor_OpenUnknownID verifies opening a missing recipe reports NOT_FOUND.
*/
func TestEditor_OpenUnknownID(t *testing.T) {
	f := newEditorFixture(true)

	err := f.editor.Open(context.Background(), "missing")

	assert.ErrorIs(t, err, apperr.NotFound("Recipe"))
	assert.Equal(t, 1, f.navigator.Errors)
}

/*
TestEditor_BackendFailureKeepsGuard verifies a failed save still protects the draft.
*/
func TestEditor_BackendFailureKeepsGuard(t *testing.T) {
	f := newEditorFixture(false)
	ctx := context.Background()
	require.NoError(t, f.editor.Open(ctx, ""))
	fillPancakes(f.editor.Form())

	f.backend.Err = errors.New("connection refused")
	outcome, err := f.editor.Submit(ctx)

	assert.Equal(t, form.OutcomeFailed, outcome)
	assert.Equal(t, apperr.CodeServiceUnavailable, apperr.As(err).Code)
	assert.False(t, f.editor.Submitted())
	assert.False(t, f.editor.CanLeave())
}

/*
TestEditor_Delete deletes only after the confirmer says yes.
*/
func TestEditor_Delete(t *testing.T) {
	tests := []struct {
		name    string
		answer  bool
		deleted bool
	}{
		{"confirmed", true, true},
		{"declined", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEditorFixture(tt.answer)
			ctx := context.Background()
			require.NoError(t, f.editor.Open(ctx, recipetest.SaladID))

			deleted, err := f.editor.Delete(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.deleted, deleted)
			assert.Equal(t, []string{"Do you want to delete Green salad?"}, f.prompts.prompts)
			assert.Equal(t, tt.deleted, f.backend.CallCount() == 2)
		})
	}
}

/*
TestEditor_DeleteInCreateMode rejects delete when no recipe is open.
*/
func TestEditor_DeleteInCreateMode(t *testing.T) {
	f := newEditorFixture(true)

	_, err := f.editor.Delete(context.Background())

	assert.ErrorIs(t, err, form.ErrNotEditing)
	assert.Empty(t, f.prompts.prompts)
}
