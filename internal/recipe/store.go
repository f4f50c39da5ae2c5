// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package recipe

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/taibuivan/cookbook/pkg/slice"
)

// Filter derives the visible view from source and criteria.
//
// The text filter runs first, then the favourites filter. Source order is kept
// and the result only ever holds entries of source. Filter has no side effects.
func Filter(source []Recipe, criteria Criteria) []Recipe {
	derived := source

	if criteria.SearchText != "" {
		folder := cases.Fold()
		needle := folder.String(criteria.SearchText)
		contains := func(value string) bool {
			return strings.Contains(folder.String(value), needle)
		}

		derived = slice.Filter(derived, func(r Recipe) bool {
			return contains(r.Title) || slice.Any(r.Ingredients, contains)
		})
	}

	if criteria.FavouritesOnly {
		derived = slice.Filter(derived, Recipe.IsFavourite)
	}

	return slice.Map(derived, Recipe.Clone)
}

// Snapshot is the state handed to subscribers after every change.
type Snapshot struct {
	Derived  []Recipe
	Criteria Criteria
	Loading  bool
}

// Store is the state container for the mirrored collection.
//
// Every write recomputes the derived view synchronously before returning, so a
// read never observes a view that lags the latest source or criteria.
type Store struct {
	mu          sync.RWMutex
	source      []Recipe
	derived     []Recipe
	criteria    Criteria
	loading     bool
	subscribers map[int]func(Snapshot)
	nextID      int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		source:      []Recipe{},
		derived:     []Recipe{},
		subscribers: make(map[int]func(Snapshot)),
	}
}

// SetSource replaces the source collection.
func (s *Store) SetSource(recipes []Recipe) {
	s.update(func() {
		s.source = slice.Map(recipes, Recipe.Clone)
		if s.source == nil {
			s.source = []Recipe{}
		}
	})
}

// SetCriteria replaces the filter criteria.
func (s *Store) SetCriteria(criteria Criteria) {
	s.update(func() { s.criteria = criteria })
}

// SetLoading toggles the loading flag. Subscribers are notified.
func (s *Store) SetLoading(loading bool) {
	s.update(func() { s.loading = loading })
}

// Append adds a recipe at the end of the source collection.
func (s *Store) Append(r Recipe) {
	s.update(func() {
		s.source = append(slices.Clone(s.source), r.Clone())
	})
}

// Replace swaps the entry with the given id. It reports whether one was found.
func (s *Store) Replace(id string, r Recipe) bool {
	found := false
	s.update(func() {
		next := slices.Clone(s.source)
		for i := range next {
			if next[i].ID == id {
				next[i] = r.Clone()
				found = true
			}
		}
		s.source = next
	})
	return found
}

// Remove drops the entry with the given id. It reports whether one was found.
func (s *Store) Remove(id string) bool {
	found := false
	s.update(func() {
		next := slices.DeleteFunc(slices.Clone(s.source), func(r Recipe) bool { return r.ID == id })
		found = len(next) != len(s.source)
		s.source = next
	})
	return found
}

// Source returns a copy of the source collection.
func (s *Store) Source() []Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slice.Map(s.source, Recipe.Clone)
}

// Derived returns a copy of the derived view.
func (s *Store) Derived() []Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slice.Map(s.derived, Recipe.Clone)
}

// Len is the size of the derived view.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.derived)
}

func (s *Store) Criteria() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Find looks id up in the source collection, ignoring the current criteria.
func (s *Store) Find(id string) (Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.source {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return Recipe{}, false
}

// Subscribe registers fn for every future change and returns its cancel func.
//
// fn gets no snapshot from a change that starts after cancel returns. It runs
// synchronously on the goroutine that changed the store and may read the store.
// When that goroutine is a [Sync] call, fn must not call back into the Sync: the
// call still holds the Sync lock and would deadlock. Hand follow-up requests to
// another goroutine instead.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// update applies mutate, recomputes and then notifies outside the lock so
// subscribers may read the store.
func (s *Store) update(mutate func()) {
	s.mu.Lock()
	mutate()
	s.derived = Filter(s.source, s.criteria)
	snapshot := Snapshot{
		Derived:  slice.Map(s.derived, Recipe.Clone),
		Criteria: s.criteria,
		Loading:  s.loading,
	}
	listeners := make([]func(Snapshot), 0, len(s.subscribers))
	for _, id := range slices.Sorted(maps.Keys(s.subscribers)) {
		listeners = append(listeners, s.subscribers[id])
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
