// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cookbook/internal/form"
	"github.com/taibuivan/cookbook/internal/recipe/recipetest"
)

/*
TestGuard covers the pristine and submitted combinations.
*/
func TestGuard(t *testing.T) {
	tests := []struct {
		status form.LeaveStatus
		permit bool
	}{
		{form.LeaveStatus{Pristine: true}, true},
		{form.LeaveStatus{Submitted: true}, true},
		{form.LeaveStatus{Pristine: true, Submitted: true}, true},
		{form.LeaveStatus{}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.permit, form.Guard(tt.status), "%+v", tt.status)
	}
}

/*
TestEditor_Leave asks for confirmation only when there are unsaved changes.
*/
func TestEditor_Leave(t *testing.T) {
	t.Run("pristine_leaves_without_prompt", func(t *testing.T) {
		f := newEditorFixture(false)
		require.NoError(t, f.editor.Open(context.Background(), recipetest.PancakesID))

		ok, err := f.editor.Leave(context.Background())

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, f.prompts.prompts)
	})

	t.Run("dirty_asks_and_respects_no", func(t *testing.T) {
		f := newEditorFixture(false)
		require.NoError(t, f.editor.Open(context.Background(), ""))
		f.editor.Form().Title.Set("Soup")

		ok, err := f.editor.Leave(context.Background())

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []string{form.PromptDiscard}, f.prompts.prompts)
	})

	t.Run("dirty_asks_and_respects_yes", func(t *testing.T) {
		f := newEditorFixture(true)
		require.NoError(t, f.editor.Open(context.Background(), ""))
		f.editor.Form().AddIngredient().Set("Salt")

		ok, err := f.editor.Leave(context.Background())

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("typing_then_reverting_still_counts_as_modified", func(t *testing.T) {
		f := newEditorFixture(false)
		require.NoError(t, f.editor.Open(context.Background(), recipetest.PancakesID))
		f.editor.Form().Title.Set("Crepes")
		f.editor.Form().Title.Set("Pancakes")

		assert.False(t, f.editor.CanLeave())
	})
}

/*
TestConfirmAdapters checks Always and ConfirmFunc.
*/
func TestConfirmAdapters(t *testing.T) {
	ok, err := form.Always(true).Confirm(context.Background(), "?")
	require.NoError(t, err)
	assert.True(t, ok)

	var seen string
	fn := form.ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		seen = prompt
		return false, nil
	})
	ok, err = fn.Confirm(context.Background(), "Really?")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Really?", seen)
}
