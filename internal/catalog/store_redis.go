// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/cookbook/internal/platform/constants"
	"github.com/taibuivan/cookbook/internal/recipe"
)

// Cache is the subset of the go-redis client used for the collection key.
type Cache interface {
	Get(context context.Context, key string) *redis.StringCmd
	Set(context context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(context context.Context, keys ...string) *redis.IntCmd
}

// CachedRepository keeps a copy of the full collection in Redis.
//
// List reads through the cache; every successful mutation drops the key.
// Cache failures are logged and never fail a request.
type CachedRepository struct {
	Repository
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository decorates next with a Redis cache.
func NewCachedRepository(next Repository, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	if ttl <= 0 {
		ttl = constants.DefaultCacheTTL
	}
	return &CachedRepository{Repository: next, cache: cache, ttl: ttl, logger: logger}
}

func (repository *CachedRepository) List(context context.Context) ([]recipe.Recipe, error) {
	raw, err := repository.cache.Get(context, constants.RedisKeyRecipeCollection).Bytes()
	switch {
	case err == nil:
		var recipes []recipe.Recipe
		if jsonErr := json.Unmarshal(raw, &recipes); jsonErr == nil {
			return recipes, nil
		}
		repository.logger.WarnContext(context, "recipe_cache_corrupt")
	case !errors.Is(err, redis.Nil):
		repository.logger.WarnContext(context, "recipe_cache_read_failed", slog.Any("error", err))
	}

	recipes, err := repository.Repository.List(context)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(recipes); err == nil {
		if err := repository.cache.Set(context, constants.RedisKeyRecipeCollection, payload, repository.ttl).Err(); err != nil {
			repository.logger.WarnContext(context, "recipe_cache_write_failed", slog.Any("error", err))
		}
	}
	return recipes, nil
}

func (repository *CachedRepository) Create(context context.Context, r *recipe.Recipe) (*recipe.Recipe, error) {
	created, err := repository.Repository.Create(context, r)
	if err == nil {
		repository.invalidate(context)
	}
	return created, err
}

func (repository *CachedRepository) Update(context context.Context, id string, r *recipe.Recipe) (*recipe.Recipe, error) {
	updated, err := repository.Repository.Update(context, id, r)
	if err == nil {
		repository.invalidate(context)
	}
	return updated, err
}

func (repository *CachedRepository) SetFavourite(context context.Context, id string, favourite bool) (*recipe.Recipe, error) {
	updated, err := repository.Repository.SetFavourite(context, id, favourite)
	if err == nil {
		repository.invalidate(context)
	}
	return updated, err
}

func (repository *CachedRepository) Delete(context context.Context, id string) error {
	err := repository.Repository.Delete(context, id)
	if err == nil {
		repository.invalidate(context)
	}
	return err
}

func (repository *CachedRepository) invalidate(context context.Context) {
	if err := repository.cache.Del(context, constants.RedisKeyRecipeCollection).Err(); err != nil {
		repository.logger.WarnContext(context, "recipe_cache_invalidate_failed", slog.Any("error", err))
	}
}
