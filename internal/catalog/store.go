// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog is the backend side of Cookbook: the recipe resource collection
served under /api/v1/recipes.

Layout:

  - store.go: the [Repository] contract.
  - store_postgres.go, store_memory.go: the two storage drivers.
  - store_redis.go: a cache-aside decorator for the list read.
  - service.go: validation and logging around the repository.
  - http.go: chi routes.
*/
package catalog

import (
	"context"

	"github.com/taibuivan/cookbook/internal/recipe"
)

// Repository persists recipes in insertion order.
//
// Lookups of unknown ids return an error carrying the NOT_FOUND code.
type Repository interface {
	List(context context.Context) ([]recipe.Recipe, error)
	FindByID(context context.Context, id string) (*recipe.Recipe, error)
	Create(context context.Context, r *recipe.Recipe) (*recipe.Recipe, error)
	Update(context context.Context, id string, r *recipe.Recipe) (*recipe.Recipe, error)
	SetFavourite(context context.Context, id string, favourite bool) (*recipe.Recipe, error)
	Delete(context context.Context, id string) error
}
