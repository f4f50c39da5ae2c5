// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/cookbook/internal/platform/validate"
	"github.com/taibuivan/cookbook/internal/recipe"
	"github.com/taibuivan/cookbook/pkg/uuid"
)

// Service validates writes before they reach the [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(context context.Context) ([]recipe.Recipe, error) {
	return service.repo.List(context)
}

// Get returns NOT_FOUND for ids that are not UUIDs without querying storage.
func (service *Service) Get(context context.Context, id string) (*recipe.Recipe, error) {
	if !uuid.Valid(id) {
		return nil, errRecipeNotFound()
	}
	return service.repo.FindByID(context, id)
}

// Create stores a recipe whose id was assigned by the client.
func (service *Service) Create(context context.Context, r *recipe.Recipe) (*recipe.Recipe, error) {
	if err := new(validate.Validator).Required("id", r.ID).Err(); err != nil {
		return nil, err
	}
	if err := validate.Struct(r); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, r)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "recipe_created", slog.String("id", created.ID))
	return created, nil
}

// Update replaces the recipe at id. The body id is forced to the path id.
func (service *Service) Update(context context.Context, id string, r *recipe.Recipe) (*recipe.Recipe, error) {
	if !uuid.Valid(id) {
		return nil, errRecipeNotFound()
	}

	r.ID = id
	if err := validate.Struct(r); err != nil {
		return nil, err
	}

	updated, err := service.repo.Update(context, id, r)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "recipe_updated", slog.String("id", id))
	return updated, nil
}

func (service *Service) SetFavourite(context context.Context, id string, favourite bool) (*recipe.Recipe, error) {
	if !uuid.Valid(id) {
		return nil, errRecipeNotFound()
	}

	updated, err := service.repo.SetFavourite(context, id, favourite)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "recipe_favourite_set",
		slog.String("id", id),
		slog.Bool("favourite", favourite),
	)
	return updated, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if !uuid.Valid(id) {
		return errRecipeNotFound()
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "recipe_deleted", slog.String("id", id))
	return nil
}
