// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package recipe is the client-side core of Cookbook.

It holds the mirrored recipe collection ([Store]), the pure filter that derives
the visible view from it ([Filter]), and the bridge to the backend resource
collection ([Sync]).

Data flow is one-way:

	Sync --SetSource--> Store --Filter(source, criteria)--> derived view --> subscribers

Nothing outside [Store.SetSource] and its helpers may change the source
collection.
*/
package recipe

import (
	"net/url"
	"slices"
	"strings"

	"github.com/taibuivan/cookbook/internal/platform/constants"
	"github.com/taibuivan/cookbook/pkg/pointer"
)

// Recipe is a single catalog entry.
//
// The validate tags mirror the rules of the client form and are enforced by the
// backend service on every write.
type Recipe struct {
	ID           string   `json:"id"                  yaml:"id"                  validate:"omitempty,uuid"`
	Title        string   `json:"title"               yaml:"title"               validate:"notblank,trimmin=3,trimmax=20"`
	Description  string   `json:"description"         yaml:"description"         validate:"notblank,trimmin=3,trimmax=200"`
	Instructions string   `json:"instructions"        yaml:"instructions"        validate:"notblank,trimmin=3,trimmax=200"`
	ImageURL     string   `json:"imageUrl"            yaml:"imageUrl"            validate:"notblank,trimmin=3,httpsurl"`
	Ingredients  []string `json:"ingredients"         yaml:"ingredients"         validate:"required,min=1,dive,notblank,trimmin=3,trimmax=20"`
	Favourite    *bool    `json:"favourite,omitempty" yaml:"favourite,omitempty"`
}

// IsFavourite reports whether the favourite flag is set and true.
func (r Recipe) IsFavourite() bool {
	return pointer.Val(r.Favourite)
}

// Clone returns a deep copy so callers never share the ingredient slice.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = slices.Clone(r.Ingredients)
	out.Favourite = pointer.Clone(r.Favourite)
	return out
}

// Equal reports field-for-field equality, id included.
func (r Recipe) Equal(other Recipe) bool {
	return r.ID == other.ID &&
		r.Title == other.Title &&
		r.Description == other.Description &&
		r.Instructions == other.Instructions &&
		r.ImageURL == other.ImageURL &&
		slices.Equal(r.Ingredients, other.Ingredients) &&
		pointer.Equal(r.Favourite, other.Favourite)
}

// Criteria selects the derived view of the source collection.
type Criteria struct {
	// SearchText matches titles and ingredients case-insensitively. Empty disables it.
	SearchText string
	// FavouritesOnly keeps only recipes whose favourite flag is true.
	FavouritesOnly bool
}

// CriteriaFromQuery reads the navigational query parameters.
//
// Only the literal "true" enables the favourites filter.
func CriteriaFromQuery(values url.Values) Criteria {
	return Criteria{
		SearchText:     values.Get(constants.QuerySearch),
		FavouritesOnly: values.Get(constants.QueryFavourites) == "true",
	}
}

// Query is the inverse of [CriteriaFromQuery]. Unset criteria are omitted.
func (c Criteria) Query() url.Values {
	values := url.Values{}
	if c.SearchText != "" {
		values.Set(constants.QuerySearch, c.SearchText)
	}
	if c.FavouritesOnly {
		values.Set(constants.QueryFavourites, "true")
	}
	return values
}

// NormalizeSearch prepares raw search input for the search query parameter.
func NormalizeSearch(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
