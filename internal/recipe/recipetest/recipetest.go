// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package recipetest provides recipe fixtures and test doubles shared by the
// client and backend test suites.
package recipetest

import (
	"context"
	"sync"

	"github.com/taibuivan/cookbook/internal/recipe"
	"github.com/taibuivan/cookbook/pkg/pointer"
)

// Fixed ids so assertions can name recipes directly.
const (
	PancakesID = "0b6f3b4e-8f0a-4c47-9a43-5a1a0f6c2d11"
	OmeletteID = "6d1c2a55-3e8b-4b7e-a7a1-2f9d4c8e0b22"
	SaladID    = "a3e4f5d6-7b8c-4d9e-8f01-23456789ab33"
)

// Pancakes returns a valid, unsaved draft.
func Pancakes() recipe.Recipe {
	return recipe.Recipe{
		Title:        "Pancakes",
		Description:  "Fluffy pancakes with syrup",
		Instructions: "Mix and fry until golden",
		ImageURL:     "https://img.example.com/p.png",
		Ingredients:  []string{"Flour", "Eggs", "Milk"},
	}
}

// Catalog returns three stored recipes; only the omelette is a favourite.
func Catalog() []recipe.Recipe {
	pancakes := Pancakes()
	pancakes.ID = PancakesID

	return []recipe.Recipe{
		pancakes,
		{
			ID:           OmeletteID,
			Title:        "Omelette",
			Description:  "Three egg omelette",
			Instructions: "Whisk and cook gently",
			ImageURL:     "https://img.example.com/o.png",
			Ingredients:  []string{"Eggs", "Butter", "Chives"},
			Favourite:    pointer.To(true),
		},
		{
			ID:           SaladID,
			Title:        "Green salad",
			Description:  "Crisp leaves and lemon",
			Instructions: "Toss everything together",
			ImageURL:     "https://img.example.com/s.png",
			Ingredients:  []string{"Lettuce", "Lemon", "Olive oil"},
			Favourite:    pointer.To(false),
		},
	}
}

// Call records one request made to a [FakeBackend].
type Call struct {
	Method    string
	ID        string
	Recipe    recipe.Recipe
	Favourite bool
}

// FakeBackend is an in-memory recipe.Backend that records every call.
//
// Setting Err makes every call fail with it and leave the data untouched.
type FakeBackend struct {
	mu      sync.Mutex
	Recipes []recipe.Recipe
	Calls   []Call
	Err     error
}

// NewFakeBackend returns a backend holding recipes.
func NewFakeBackend(recipes ...recipe.Recipe) *FakeBackend {
	return &FakeBackend{Recipes: recipes}
}

// CallCount returns the number of recorded calls.
func (f *FakeBackend) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *FakeBackend) record(call Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
	return f.Err
}

func (f *FakeBackend) List(_ context.Context) ([]recipe.Recipe, error) {
	if err := f.record(Call{Method: "List"}); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recipe.Recipe, len(f.Recipes))
	for i, r := range f.Recipes {
		out[i] = r.Clone()
	}
	return out, nil
}

func (f *FakeBackend) Create(_ context.Context, draft recipe.Recipe) (recipe.Recipe, error) {
	if err := f.record(Call{Method: "Create", ID: draft.ID, Recipe: draft.Clone()}); err != nil {
		return recipe.Recipe{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Recipes = append(f.Recipes, draft.Clone())
	return draft.Clone(), nil
}

func (f *FakeBackend) Update(_ context.Context, id string, r recipe.Recipe) (recipe.Recipe, error) {
	if err := f.record(Call{Method: "Update", ID: id, Recipe: r.Clone()}); err != nil {
		return recipe.Recipe{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Recipes {
		if f.Recipes[i].ID == id {
			f.Recipes[i] = r.Clone()
		}
	}
	return r.Clone(), nil
}

func (f *FakeBackend) SetFavourite(_ context.Context, id string, favourite bool) (recipe.Recipe, error) {
	if err := f.record(Call{Method: "SetFavourite", ID: id, Favourite: favourite}); err != nil {
		return recipe.Recipe{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Recipes {
		if f.Recipes[i].ID == id {
			f.Recipes[i].Favourite = pointer.To(favourite)
			return f.Recipes[i].Clone(), nil
		}
	}
	return recipe.Recipe{}, nil
}

func (f *FakeBackend) Delete(_ context.Context, id string) error {
	if err := f.record(Call{Method: "Delete", ID: id}); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.Recipes[:0]
	for _, r := range f.Recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.Recipes = kept
	return nil
}

// Navigator counts navigation signals.
type Navigator struct {
	mu     sync.Mutex
	Lists  int
	Errors int
}

func (n *Navigator) ToList() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Lists++
}

func (n *Navigator) ToError() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors++
}
