// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package form

import (
	"fmt"
	"slices"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/recipe"
	"github.com/taibuivan/cookbook/pkg/pointer"
)

// Field names, matching the JSON names of [recipe.Recipe].
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldInstructions = "instructions"
	FieldImageURL     = "imageUrl"
	FieldIngredients  = "ingredients"
)

// IngredientField names the control of ingredient row i.
func IngredientField(i int) string {
	return fmt.Sprintf("%s[%d]", FieldIngredients, i)
}

// RecipeForm holds a recipe draft as controls.
//
// The ingredient list always has at least one row.
type RecipeForm struct {
	Title        *Control
	Description  *Control
	Instructions *Control
	ImageURL     *Control

	ingredients []*Control

	// id and favourite are carried through unchanged; no control edits them.
	id        string
	favourite *bool

	// removed is set once a row has been deleted since the last Patch.
	removed bool
}

// NewRecipeForm returns an empty form with one blank ingredient row.
func NewRecipeForm() *RecipeForm {
	return &RecipeForm{
		Title:        NewControl(FieldTitle, titleRules...),
		Description:  NewControl(FieldDescription, descriptionRules...),
		Instructions: NewControl(FieldInstructions, instructionsRules...),
		ImageURL:     NewControl(FieldImageURL, imageURLRules...),
		ingredients:  []*Control{NewControl(IngredientField(0), ingredientRules...)},
	}
}

// Ingredients returns the ingredient rows in order.
func (f *RecipeForm) Ingredients() []*Control {
	return slices.Clone(f.ingredients)
}

// Ingredient returns row i, or nil when out of range.
func (f *RecipeForm) Ingredient(i int) *Control {
	if i < 0 || i >= len(f.ingredients) {
		return nil
	}
	return f.ingredients[i]
}

// AddIngredient appends an empty row and returns it.
func (f *RecipeForm) AddIngredient() *Control {
	control := NewControl(IngredientField(len(f.ingredients)), ingredientRules...)
	f.ingredients = append(f.ingredients, control)
	return control
}

// RemoveIngredient deletes row i and shifts later rows down by one.
//
// The last remaining row is never removed; false is returned instead.
func (f *RecipeForm) RemoveIngredient(i int) bool {
	if i < 0 || i >= len(f.ingredients) || len(f.ingredients) == 1 {
		return false
	}

	f.ingredients = slices.Delete(f.ingredients, i, i+1)
	for j := i; j < len(f.ingredients); j++ {
		f.ingredients[j].rename(IngredientField(j))
	}
	f.removed = true
	return true
}

// Patch loads r into the form and makes it the new pristine state.
func (f *RecipeForm) Patch(r recipe.Recipe) {
	f.id = r.ID
	f.favourite = pointer.Clone(r.Favourite)

	f.Title.Patch(r.Title)
	f.Description.Patch(r.Description)
	f.Instructions.Patch(r.Instructions)
	f.ImageURL.Patch(r.ImageURL)

	f.ingredients = f.ingredients[:0]
	for _, ingredient := range r.Ingredients {
		f.AddIngredient().Patch(ingredient)
	}
	if len(f.ingredients) == 0 {
		f.AddIngredient()
	}

	for _, control := range f.controls() {
		control.reset()
	}
	f.removed = false
}

// MarkAllAsTouched touches every control, ingredient rows included.
func (f *RecipeForm) MarkAllAsTouched() {
	for _, control := range f.controls() {
		control.MarkAsTouched()
	}
}

// Valid reports whether every control passes its rules.
func (f *RecipeForm) Valid() bool {
	for _, control := range f.controls() {
		if !control.Valid() {
			return false
		}
	}
	return true
}

// Pristine reports whether the user has changed nothing since the last Patch.
func (f *RecipeForm) Pristine() bool {
	if f.removed {
		return false
	}
	for _, control := range f.controls() {
		if control.Dirty() {
			return false
		}
	}
	return true
}

// Value assembles the draft from the committed control values.
func (f *RecipeForm) Value() recipe.Recipe {
	ingredients := make([]string, len(f.ingredients))
	for i, control := range f.ingredients {
		ingredients[i] = control.Value()
	}

	return recipe.Recipe{
		ID:           f.id,
		Title:        f.Title.Value(),
		Description:  f.Description.Value(),
		Instructions: f.Instructions.Value(),
		ImageURL:     f.ImageURL.Value(),
		Ingredients:  ingredients,
		Favourite:    pointer.Clone(f.favourite),
	}
}

// Errors maps field names to their current failures. Valid fields are absent.
func (f *RecipeForm) Errors() map[string][]apperr.FieldError {
	out := make(map[string][]apperr.FieldError)
	for _, control := range f.controls() {
		if errs := control.Errors(); len(errs) > 0 {
			out[control.Name()] = errs
		}
	}
	return out
}

// Err returns a VALIDATION_ERROR listing every failure in field order, or nil.
func (f *RecipeForm) Err() error {
	var details []apperr.FieldError
	for _, control := range f.controls() {
		details = append(details, control.Errors()...)
	}
	if len(details) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", details...)
}

// controls lists every control in display order.
func (f *RecipeForm) controls() []*Control {
	out := []*Control{f.Title, f.Description}
	out = append(out, f.ingredients...)
	return append(out, f.Instructions, f.ImageURL)
}
