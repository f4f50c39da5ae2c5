// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/recipe"
	"github.com/taibuivan/cookbook/pkg/pointer"
)

// MemoryRepository keeps recipes in process memory (STORAGE_DRIVER=memory).
type MemoryRepository struct {
	mu      sync.RWMutex
	recipes []recipe.Recipe
}

// NewMemoryRepository returns a repository seeded with the given recipes.
func NewMemoryRepository(seed ...recipe.Recipe) *MemoryRepository {
	repository := &MemoryRepository{recipes: make([]recipe.Recipe, 0, len(seed))}
	for _, r := range seed {
		repository.recipes = append(repository.recipes, r.Clone())
	}
	return repository
}

func (repository *MemoryRepository) List(_ context.Context) ([]recipe.Recipe, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	out := make([]recipe.Recipe, len(repository.recipes))
	for i, r := range repository.recipes {
		out[i] = r.Clone()
	}
	return out, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*recipe.Recipe, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	index := repository.indexOf(id)
	if index < 0 {
		return nil, errRecipeNotFound()
	}
	return pointer.To(repository.recipes[index].Clone()), nil
}

func (repository *MemoryRepository) Create(_ context.Context, r *recipe.Recipe) (*recipe.Recipe, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.indexOf(r.ID) >= 0 {
		return nil, apperr.Conflict(resourceRecipe + " already exists")
	}
	repository.recipes = append(repository.recipes, r.Clone())
	return pointer.To(r.Clone()), nil
}

func (repository *MemoryRepository) Update(_ context.Context, id string, r *recipe.Recipe) (*recipe.Recipe, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(id)
	if index < 0 {
		return nil, errRecipeNotFound()
	}
	updated := r.Clone()
	updated.ID = id
	repository.recipes[index] = updated
	return pointer.To(updated.Clone()), nil
}

func (repository *MemoryRepository) SetFavourite(_ context.Context, id string, favourite bool) (*recipe.Recipe, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(id)
	if index < 0 {
		return nil, errRecipeNotFound()
	}
	repository.recipes[index].Favourite = pointer.To(favourite)
	return pointer.To(repository.recipes[index].Clone()), nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(id)
	if index < 0 {
		return errRecipeNotFound()
	}
	repository.recipes = slices.Delete(repository.recipes, index, index+1)
	return nil
}

func (repository *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(repository.recipes, func(r recipe.Recipe) bool { return r.ID == id })
}
