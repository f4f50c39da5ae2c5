// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants holds the fixed values shared by the API server and the
terminal client: timings, rate limits, header names, cache keys and the query
parameters of the list view.
*/
package constants

import "time"

const (
	AppName    = "cookbook"
	AppVersion = "0.1.0-dev"
)

// # HTTP Server

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 2 * time.Minute

	// GlobalRequestTimeout bounds a whole request; PostgreSQL statements get
	// the same value as statement_timeout.
	GlobalRequestTimeout = 15 * time.Second

	// ShutdownTimeout is how long in-flight requests may drain on shutdown.
	ShutdownTimeout = 20 * time.Second
)

// # Rate Limiting (per client IP)

const (
	DefaultRateLimitRPS   = 50.0
	DefaultRateLimitBurst = 100

	RateLimitCleanupInterval = time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"

	ContentTypeJSON = "application/json; charset=utf-8"
)

// Keys of the health payloads.
const (
	FieldStatus = "status"
	FieldChecks = "checks"
)

// SchemaCookbook is the PostgreSQL schema owning the recipe table.
const SchemaCookbook = "cookbook"

// # Cache

const (
	// RedisKeyRecipeCollection caches the full, ordered recipe collection.
	RedisKeyRecipeCollection = "cookbook:recipes:all"

	// DefaultCacheTTL bounds staleness if an invalidation is ever missed.
	DefaultCacheTTL = 5 * time.Minute
)

// # List View Query

const (
	QuerySearch     = "search"
	QueryFavourites = "favourites"
)
