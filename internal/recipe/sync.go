// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/pkg/uuid"
)

// Sync bridges the [Store] and a [Backend].
//
// # Concurrency
//
// Requests are serialized in issue order: a call waits for the previous one to
// finish before it reaches the backend. A superseded request is cancelled only
// through its own context. Nothing is retried.
//
// # Failure
//
// A failed request leaves the store exactly as it was, is logged, and is
// returned as an *apperr.AppError. Panics from the backend are recovered.
//
// # Re-entrancy
//
// Store updates and navigation signals are delivered while the call still
// holds the Sync lock. Subscribers and navigators must not call the Sync
// synchronously; see [Store.Subscribe].
type Sync struct {
	backend   Backend
	store     *Store
	navigator Navigator
	logger    *slog.Logger
	newID     func() string

	mu sync.Mutex
}

// Option configures a [Sync].
type Option func(*Sync)

// WithIDGenerator replaces the random UUID generator used for new drafts.
func WithIDGenerator(generate func() string) Option {
	return func(s *Sync) { s.newID = generate }
}

// NewSync wires a Sync. A nil navigator ignores navigation signals.
func NewSync(backend Backend, store *Store, navigator Navigator, logger *slog.Logger, opts ...Option) *Sync {
	if navigator == nil {
		navigator = NopNavigator{}
	}
	s := &Sync{
		backend:   backend,
		store:     store,
		navigator: navigator,
		logger:    logger,
		newID:     uuid.NewRandom,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the store this Sync writes to.
func (s *Sync) Store() *Store {
	return s.store
}

// FetchAll replaces the source collection with the backend's.
func (s *Sync) FetchAll(context context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fetchAll(context)
}

// Get refreshes the collection and resolves id in it.
//
// An unknown id signals the error view and returns NOT_FOUND.
func (s *Sync) Get(context context.Context, id string) (Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fetchAll(context); err != nil {
		return Recipe{}, err
	}

	found, ok := s.store.Find(id)
	if !ok {
		s.logger.WarnContext(context, "recipe_not_found", slog.String("id", id))
		s.navigator.ToError()
		return Recipe{}, apperr.NotFound("Recipe")
	}
	return found, nil
}

// Create assigns a fresh id to draft, sends it and appends the stored entity.
func (s *Sync) Create(context context.Context, draft Recipe) (Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft = draft.Clone()
	draft.ID = s.newID()

	var created Recipe
	err := s.call(context, "create_recipe", func() (err error) {
		created, err = s.backend.Create(context, draft)
		return err
	})
	if err != nil {
		return Recipe{}, err
	}

	s.store.Append(created)
	s.logger.InfoContext(context, "recipe_created", slog.String("id", created.ID))
	s.navigator.ToList()
	return created, nil
}

// Update sends a full replacement for id and swaps the stored entry.
func (s *Sync) Update(context context.Context, id string, recipe Recipe) (Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe = recipe.Clone()
	recipe.ID = id

	var updated Recipe
	err := s.call(context, "update_recipe", func() (err error) {
		updated, err = s.backend.Update(context, id, recipe)
		return err
	})
	if err != nil {
		return Recipe{}, err
	}

	s.store.Replace(id, updated)
	s.logger.InfoContext(context, "recipe_updated", slog.String("id", id))
	s.navigator.ToList()
	return updated, nil
}

// Delete removes id from the backend and from the source collection.
func (s *Sync) Delete(context context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.call(context, "delete_recipe", func() error {
		return s.backend.Delete(context, id)
	})
	if err != nil {
		return err
	}

	s.store.Remove(id)
	s.logger.InfoContext(context, "recipe_deleted", slog.String("id", id))
	s.navigator.ToList()
	return nil
}

// ToggleFavourite patches only the favourite flag, then refetches the whole
// collection. Local state is never patched optimistically.
func (s *Sync) ToggleFavourite(context context.Context, id string, favourite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.call(context, "toggle_favourite", func() error {
		_, err := s.backend.SetFavourite(context, id, favourite)
		return err
	})
	if err != nil {
		return err
	}

	return s.fetchAll(context)
}

func (s *Sync) fetchAll(context context.Context) error {
	var recipes []Recipe
	err := s.call(context, "fetch_recipes", func() (err error) {
		recipes, err = s.backend.List(context)
		return err
	})
	if err != nil {
		return err
	}

	s.store.SetSource(recipes)
	return nil
}

// call runs one backend request with the loading flag raised.
func (s *Sync) call(context context.Context, action string, request func() error) (err error) {
	s.store.SetLoading(true)
	defer s.store.SetLoading(false)

	defer func() {
		if recovered := recover(); recovered != nil {
			err = apperr.Internal(fmt.Errorf("%s: panic: %v", action, recovered))
		}
		if err != nil {
			err = asAppError(err)
			s.logger.ErrorContext(context, action+"_failed", slog.Any("error", err))
		}
	}()

	return request()
}

func asAppError(err error) *apperr.AppError {
	if appError := apperr.As(err); appError != nil {
		return appError
	}
	return apperr.Unavailable(err)
}
