// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cookbook/internal/platform/constants"
	"github.com/taibuivan/cookbook/internal/recipe"
	"github.com/taibuivan/cookbook/internal/recipe/recipetest"
)

// fakeCache is a map-backed Cache.
type fakeCache struct {
	values  map[string]string
	ttls    map[string]time.Duration
	getErr  error
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *fakeCache) Get(_ context.Context, key string) *redis.StringCmd {
	if c.getErr != nil {
		return redis.NewStringResult("", c.getErr)
	}
	value, ok := c.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (c *fakeCache) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	c.values[key] = string(value.([]byte))
	c.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (c *fakeCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	c.deletes++
	for _, key := range keys {
		delete(c.values, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

// countingRepository counts List calls on the wrapped repository.
type countingRepository struct {
	Repository
	lists int
}

func (repository *countingRepository) List(context context.Context) ([]recipe.Recipe, error) {
	repository.lists++
	return repository.Repository.List(context)
}

func newCachedFixture() (*CachedRepository, *countingRepository, *fakeCache) {
	inner := &countingRepository{Repository: NewMemoryRepository(recipetest.Catalog()...)}
	cache := newFakeCache()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewCachedRepository(inner, cache, time.Minute, logger), inner, cache
}

/*
TestCachedRepository_ListReadsThrough fills the cache on a miss and serves the next read from it.
*/
func TestCachedRepository_ListReadsThrough(t *testing.T) {
	repository, inner, cache := newCachedFixture()
	ctx := context.Background()

	first, err := repository.List(ctx)
	require.NoError(t, err)
	second, err := repository.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.lists)
	assert.Equal(t, time.Minute, cache.ttls[constants.RedisKeyRecipeCollection])
}

/*
TestCachedRepository_MutationInvalidates drops the cached collection after every successful write.
*/
func TestCachedRepository_MutationInvalidates(t *testing.T) {
	repository, inner, cache := newCachedFixture()
	ctx := context.Background()

	_, err := repository.List(ctx)
	require.NoError(t, err)

	_, err = repository.SetFavourite(ctx, recipetest.PancakesID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.deletes)

	recipes, err := repository.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.lists)
	assert.True(t, recipes[0].IsFavourite())

	// A failed mutation leaves the cache alone.
	require.Error(t, repository.Delete(ctx, "missing"))
	assert.Equal(t, 1, cache.deletes)
}

/*
TestCachedRepository_CacheFailureFallsBack reads storage when the cache is down.
*/
func TestCachedRepository_CacheFailureFallsBack(t *testing.T) {
	repository, inner, cache := newCachedFixture()
	cache.getErr = errors.New("redis down")

	recipes, err := repository.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, recipes, 3)
	assert.Equal(t, 1, inner.lists)
}
