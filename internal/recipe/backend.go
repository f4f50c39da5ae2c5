// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package recipe

import "context"

// Backend is the recipe resource collection reached by [Sync].
//
// Implementations return *apperr.AppError values; remote.Client is the HTTP one.
type Backend interface {
	List(context context.Context) ([]Recipe, error)
	Create(context context.Context, draft Recipe) (Recipe, error)
	Update(context context.Context, id string, recipe Recipe) (Recipe, error)
	SetFavourite(context context.Context, id string, favourite bool) (Recipe, error)
	Delete(context context.Context, id string) error
}

// Navigator receives the outbound navigation signals.
type Navigator interface {
	// ToList is signalled after a successful create, update or delete.
	ToList()
	// ToError is signalled when a requested id does not resolve to a recipe.
	ToError()
}

// NopNavigator ignores every signal.
type NopNavigator struct{}

func (NopNavigator) ToList()  {}
func (NopNavigator) ToError() {}
